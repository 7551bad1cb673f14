package users

import (
	"context"
	"time"

	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/google/uuid"
)

// GetUserByID implements UserStore.
func (us *userStore) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user := &types.User{ID: userID}
	if err := us.db.NewSelect().Model(user).WherePK().Scan(ctx); err != nil {
		return nil, v1.WrapDatabaseError(err, v1.DatabaseOperationRead)
	}

	return user, nil
}

// GetUserByUsername implements UserStore.
func (us *userStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	user := &types.User{}
	if err := us.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx); err != nil {
		return nil, v1.WrapDatabaseError(err, v1.DatabaseOperationRead)
	}

	return user, nil
}

// GetUserByEmail implements UserStore.
func (us *userStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	user := &types.User{}
	if err := us.db.NewSelect().Model(user).Where("email = ?", email).Scan(ctx); err != nil {
		return nil, v1.WrapDatabaseError(err, v1.DatabaseOperationRead)
	}

	return user, nil
}

// UserExists implements UserStore.
func (us *userStore) UserExists(ctx context.Context, username, email string) (bool, bool) {
	usernameTaken := false
	emailTaken := false

	if username != "" {
		exists, err := us.db.NewSelect().Model(&types.User{}).Where("username = ?", username).Exists(ctx)
		if err != nil {
			us.logger.Err(err).Str("username", username).Msg("username existence check failed")
		}
		usernameTaken = err == nil && exists
	}

	if email != "" {
		exists, err := us.db.NewSelect().Model(&types.User{}).Where("email = ?", email).Exists(ctx)
		if err != nil {
			us.logger.Err(err).Str("email", email).Msg("email existence check failed")
		}
		emailTaken = err == nil && exists
	}

	return usernameTaken, emailTaken
}

// UpdateProfile implements UserStore.
func (us *userStore) UpdateProfile(ctx context.Context, userID uuid.UUID, email, username, bio string) error {
	_, err := us.db.NewUpdate().
		Model(&types.User{ID: userID}).
		WherePK().
		Set("email = ?", email).
		Set("username = ?", username).
		Set("bio = ?", bio).
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationUpdate)
	}

	return nil
}

// UpdateUserPWD implements UserStore.
func (us *userStore) UpdateUserPWD(ctx context.Context, userID uuid.UUID, newPassword string) error {
	_, err := us.db.NewUpdate().
		Model(&types.User{ID: userID}).
		WherePK().
		Set("password = ?", newPassword).
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationUpdate)
	}

	return nil
}

// DeleteUser implements UserStore.
func (us *userStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := us.db.NewDelete().Model(&types.User{ID: userID}).WherePK().Exec(ctx); err != nil {
		return v1.WrapDatabaseError(err, v1.DatabaseOperationDelete)
	}

	return nil
}
