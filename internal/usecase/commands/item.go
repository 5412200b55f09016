package commands

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotOwned      = errs.New("item not owned by user")
	ErrRequestNotFound   = errs.New("item request not found")
	ErrCommentNotAllowed = errs.New("no finished booking to comment on")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*queries.ItemSummary, error)
	// Update applies a partial edit; only the owner may edit an item.
	Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) (*queries.ItemSummary, error)
	CreateComment(ctx context.Context, itemID uuid.UUID, text string, authorID uuid.UUID) (*queries.CommentView, error)
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*queries.ItemSummary, error) {
	var created *item.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkUserExists(ctx, tx.Reads(), ownerID); derr != nil {
			return derr
		}

		if req.RequestID != nil {
			exists, derr := tx.Reads().RequestExists(ctx, *req.RequestID)
			if derr != nil {
				return errs.Mark(derr, ErrCommandDBFailure)
			}
			if !exists {
				return errs.Mark(errs.Newf("item request with id %s not found", *req.RequestID), ErrRequestNotFound)
			}
		}

		created = item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
		if _, derr := tx.Items().Create(ctx, tx.DB(), created); derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return itemSummaryOf(created), nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest, actorID uuid.UUID) (*queries.ItemSummary, error) {
	var updated *item.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item with id %s not found", itemID), ErrItemNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		if snap.OwnerID != actorID {
			return errs.Mark(
				errs.Newf("user %s does not own item %s", actorID, itemID),
				ErrItemNotOwned)
		}

		now := uc.clock.Now()
		updated = item.Reconstruct(
			snap.ID, snap.OwnerID,
			patch.Coalesce(req.Name, snap.Name),
			patch.Coalesce(req.Description, snap.Description),
			patch.Coalesce(req.Available, snap.Available),
			snap.RequestID,
			now, now,
		)
		if derr = tx.Items().Update(ctx, tx.DB(), updated); derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return itemSummaryOf(updated), nil
}

// CreateComment gates posting on a finished approved booking: the
// author must have rented this exact item and the rental must already
// be over at posting time. Waiting, rejected and still-running bookings
// do not qualify.
func (uc *itemUseCaseImpl) CreateComment(ctx context.Context, itemID uuid.UUID, text string, authorID uuid.UUID) (*queries.CommentView, error) {
	commentText, err := item.NewCommentText(text)
	if err != nil {
		return nil, err
	}

	var view *queries.CommentView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, derr := tx.Reads().UserByID(ctx, authorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id %s not found", authorID), ErrUserNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}

		exists, derr := tx.Reads().ItemExists(ctx, itemID)
		if derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		if !exists {
			return errs.Mark(errs.Newf("item with id %s not found", itemID), ErrItemNotFound)
		}

		now := uc.clock.Now()
		eligible, derr := tx.Reads().HasFinishedApprovedBooking(ctx, itemID, authorID, now)
		if derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		if !eligible {
			return errs.Mark(
				errs.Newf("user %s has no finished booking of item %s", authorID, itemID),
				ErrCommentNotAllowed)
		}

		c := item.NewComment(itemID, authorID, commentText, now)
		if _, derr = tx.Comments().Create(ctx, tx.DB(), c); derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}

		view = &queries.CommentView{
			ID:         c.ID(),
			ItemID:     c.ItemID(),
			Text:       c.Text().String(),
			AuthorName: author.Name,
			Created:    c.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func itemSummaryOf(it *item.Item) *queries.ItemSummary {
	return &queries.ItemSummary{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
}
