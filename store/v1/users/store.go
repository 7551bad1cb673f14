package users

import (
	"context"

	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type userStore struct {
	db     *bun.DB
	logger telemetry.Logger
}

func NewStore(bunWrappedDB *bun.DB, logger telemetry.Logger) UserStore {
	return &userStore{
		db:     bunWrappedDB,
		logger: logger,
	}
}

type UserStore interface {
	UserReader
	UserWriter
	UserDeleter
}

type UserReader interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	// UserExists reports whether the given username and email are already
	// claimed by any record. An empty argument skips that lookup entirely
	// and reports false for it.
	UserExists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool)
}

type UserWriter interface {
	// UpdateProfile persists email, username and bio as one statement.
	UpdateProfile(ctx context.Context, userID uuid.UUID, email, username, bio string) error
	UpdateUserPWD(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type UserDeleter interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type SessionStore interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.Session, error)
	AddSession(ctx context.Context, sessionID, ownerID uuid.UUID) error
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	DeleteAllSessions(ctx context.Context, ownerID uuid.UUID) error
}
