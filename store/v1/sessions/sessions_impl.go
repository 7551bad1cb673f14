package sessions

import (
	"context"

	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type sessionStore struct {
	db *bun.DB
}

// GetSession implements SessionStore.
func (ss *sessionStore) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.Session, error) {
	session := &types.Session{ID: sessionID}
	if err := ss.db.NewSelect().Model(session).WherePK().Scan(ctx); err != nil {
		return nil, v1.WrapDatabaseError(err, v1.DatabaseOperationRead)
	}

	return session, nil
}

// AddSession implements SessionStore.
func (ss *sessionStore) AddSession(ctx context.Context, sessionID, ownerID uuid.UUID) error {
	session := &types.Session{
		ID:      sessionID,
		OwnerID: ownerID,
	}

	if _, err := ss.db.NewInsert().Model(session).Exec(ctx); err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationWrite)
	}

	return nil
}

// DeleteSession implements SessionStore.
func (ss *sessionStore) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := ss.db.NewDelete().Model(&types.Session{ID: sessionID}).WherePK().Exec(ctx); err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationDelete)
	}

	return nil
}

// DeleteAllSessions implements SessionStore.
func (ss *sessionStore) DeleteAllSessions(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := ss.db.NewDelete().Model(&types.Session{}).Where("owner_id = ?", ownerID).Exec(ctx); err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationDelete)
	}

	return nil
}
