package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, tx db.DBTX, c *item.Comment) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.ItemID(), c.AuthorID(), c.Text().String(), c.CreatedAt())
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create comment", err)
	}
	return c.ID(), nil
}
