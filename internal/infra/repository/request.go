package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO item_requests (id, requester_id, description, created_at)
		VALUES ($1, $2, $3, $4)`,
		req.ID(), req.RequesterID(), req.Description(), req.CreatedAt())
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create item request", err)
	}
	return req.ID(), nil
}
