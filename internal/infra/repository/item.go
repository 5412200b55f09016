package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID(), it.OwnerID(), it.Name(), it.Description(), it.Available(),
		pgconv.UUIDPtrToPgtype(it.RequestID()))
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create item", err)
	}
	return it.ID(), nil
}

func (r *ItemRepository) Update(ctx context.Context, tx db.DBTX, it *item.Item) error {
	tag, err := tx.Exec(ctx, `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = $5
		WHERE id = $1`,
		it.ID(), it.Name(), it.Description(), it.Available(), it.UpdatedAt())
	if err != nil {
		return wrapWriteErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
