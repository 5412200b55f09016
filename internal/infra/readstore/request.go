package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var v queries.RequestView
	err := r.db.QueryRow(ctx, `SELECT id, description, created_at FROM item_requests WHERE id = $1`, id).
		Scan(&v.ID, &v.Description, &v.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return &v, nil
}

func (r *RequestReadStore) FindAllByRequesterID(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, created_at
		FROM item_requests
		WHERE requester_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, requesterID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item requests by requester", err)
	}
	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindAllExcludingRequester(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, created_at
		FROM item_requests
		WHERE requester_id <> $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, requesterID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item requests", err)
	}
	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.ItemSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, available, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY created_at, id`, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by request IDs", err)
	}
	return collectItemSummaries(rows)
}

func (r *RequestReadStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item request existence", err)
	}
	return exists, nil
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	defer rows.Close()

	result := []*queries.RequestView{}
	for rows.Next() {
		var v queries.RequestView
		if err := rows.Scan(&v.ID, &v.Description, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item request rows", err)
	}
	return result, nil
}

func collectItemSummaries(rows pgx.Rows) ([]*queries.ItemSummary, error) {
	defer rows.Close()

	result := []*queries.ItemSummary{}
	for rows.Next() {
		var (
			v         queries.ItemSummary
			requestID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &requestID); err != nil {
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
