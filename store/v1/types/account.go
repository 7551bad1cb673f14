package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type (
	// User is the persistent account record. Password always holds a bcrypt
	// digest, never the plaintext.
	User struct {
		bun.BaseModel `bun:"table:users,alias:u" json:"-"`

		CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at,omitempty"`
		UpdatedAt time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at,omitempty"`
		Username  string     `bun:"username,notnull,unique" json:"username,omitempty"`
		Email     string     `bun:"email,notnull,unique" json:"email,omitempty"`
		Bio       string     `bun:"bio,nullzero" json:"bio,omitempty"`
		Password  string     `bun:"password,notnull" json:"-"`
		Sessions  []*Session `bun:"rel:has-many,join:id=owner_id" json:"-"`
		ID        uuid.UUID  `bun:"id,type:uuid,pk" json:"id,omitempty"`
	}

	// Session is the cookie-bound association from a request to a user. Its
	// ID is the opaque value delivered in the session cookie.
	Session struct {
		bun.BaseModel `bun:"table:sessions,alias:s" json:"-"`

		User      *User     `bun:"rel:belongs-to,join:owner_id=id" json:"-"`
		CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at,omitempty"`
		ID        uuid.UUID `bun:"id,type:uuid,pk" json:"id"`
		OwnerID   uuid.UUID `bun:"owner_id,type:uuid,notnull" json:"-"`
	}

	// type here is string so that we can use it with echo.Context & std context.Context
	ContextKey string
)

const (
	SessionContextKey ContextKey = "carrot/session"
)
