package sessions

import (
	"github.com/5urf/carrot-challenge/store/v1/users"
	"github.com/uptrace/bun"
)

func NewStore(db *bun.DB) users.SessionStore {
	return &sessionStore{
		db: db,
	}
}
