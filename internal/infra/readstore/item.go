package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(db db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	var (
		v         queries.ItemView
		requestID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	return &v, nil
}

func (r *ItemReadStore) FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by owner", err)
	}
	defer rows.Close()

	result := []*queries.ItemView{}
	for rows.Next() {
		var (
			v         queries.ItemView
			requestID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &requestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return result, nil
}

// Search matches the text case-insensitively against name and
// description; only available items are returned.
func (r *ItemReadStore) Search(ctx context.Context, text string, limit, offset int) ([]*queries.ItemSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, available, request_id
		FROM items
		WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, text, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return collectItemSummaries(rows)
}

func (r *ItemReadStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item existence", err)
	}
	return exists, nil
}
