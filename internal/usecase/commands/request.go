package commands

import (
	"context"
	"strings"

	"gearshare/internal/domain/request"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBlankRequestDescription = errs.New("request description cannot be blank")

type CreateRequestRequest struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, req CreateRequestRequest, requesterID uuid.UUID) (*queries.RequestView, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, req CreateRequestRequest, requesterID uuid.UUID) (*queries.RequestView, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrBlankRequestDescription
	}

	var created *request.ItemRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkUserExists(ctx, tx.Reads(), requesterID); derr != nil {
			return derr
		}

		created = request.NewItemRequest(requesterID, description, uc.clock.Now())
		if _, derr := tx.Requests().Create(ctx, tx.DB(), created); derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.RequestView{
		ID:          created.ID(),
		Description: created.Description(),
		Created:     created.CreatedAt(),
		Items:       []*queries.ItemSummary{},
	}, nil
}
