package repository

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)`,
		u.ID(), u.Name(), u.Email(), passwordHash)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return u.ID(), nil
}

// Update never touches password_hash; credential changes go through a
// separate flow.
func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users SET name = $2, email = $3, updated_at = $4 WHERE id = $1`,
		u.ID(), u.Name(), u.Email(), u.UpdatedAt())
	if err != nil {
		return wrapWriteErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return wrapWriteErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
