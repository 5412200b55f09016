package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(db db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: db}
}

func (r *CommentReadStore) FindAllByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.item_id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created_at DESC, c.id`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comments by item", err)
	}
	return collectCommentViews(rows)
}

func (r *CommentReadStore) FindAllByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.item_id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at DESC, c.id`, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comments by items", err)
	}
	return collectCommentViews(rows)
}

func collectCommentViews(rows pgx.Rows) ([]*queries.CommentView, error) {
	defer rows.Close()

	result := []*queries.CommentView{}
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.ItemID, &v.Text, &v.AuthorName, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return result, nil
}
