package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound     = errs.New("item not found")
	ErrItemUnavailable  = errs.New("item not available for booking")
	ErrUserNotFound     = errs.New("user not found")
	ErrOwnItemBooking   = errs.New("owner cannot book own item")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookerResolve    = errs.New("booker cannot resolve own booking")
	ErrCommandDBFailure = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*queries.BookingView, error)
	// Resolve finalizes a waiting booking as approved or rejected.
	Resolve(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, bookingQueries: bookingQueries, clock: clk}
}

// Create validates preconditions in a fixed order so the reported error
// is stable when several fail at once: item, availability, booker,
// ownership, then the period itself. Overlap with existing bookings is
// not checked; concurrent requests for the same window all enter
// WAITING and the owner arbitrates.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, bookerID uuid.UUID) (*queries.BookingView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		itemSnap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item with id %s not found", req.ItemID), ErrItemNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		if !itemSnap.Available {
			return errs.Mark(errs.Newf("item with id %s is not available", req.ItemID), ErrItemUnavailable)
		}

		if derr = checkUserExists(ctx, tx.Reads(), bookerID); derr != nil {
			return derr
		}

		if itemSnap.OwnerID == bookerID {
			return errs.Mark(errs.Newf("user %s owns item %s", bookerID, req.ItemID), ErrOwnItemBooking)
		}

		period, derr := booking.NewPeriod(req.Start, req.End)
		if derr != nil {
			return derr
		}

		b := booking.NewBooking(req.ItemID, bookerID, period)
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByIDSystem(ctx, createdID)
}

// Resolve applies the single allowed status transition. Any user other
// than the booker may resolve; re-resolving fails as a conflict even
// with the same decision.
func (uc *bookingUseCaseImpl) Resolve(ctx context.Context, bookingID, actorID uuid.UUID, approve bool) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(errs.Newf("booking with id %s not found", bookingID), ErrBookingNotFound)
			}
			return errs.Mark(derr, ErrCommandDBFailure)
		}

		b := booking.ReconstructBooking(
			snap.ID, snap.ItemID, snap.BookerID,
			booking.ReconstructPeriod(snap.Start, snap.End),
			booking.Status(snap.Status),
			time.Time{}, time.Time{},
		)
		if derr = b.Resolve(approve); derr != nil {
			return derr
		}

		if derr = checkUserExists(ctx, tx.Reads(), actorID); derr != nil {
			return derr
		}

		if snap.BookerID == actorID {
			return errs.Mark(
				errs.Newf("user %s is the booker of booking %s", actorID, bookingID),
				ErrBookerResolve)
		}

		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, b.Status(), uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrCommandDBFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func checkUserExists(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) error {
	exists, err := reads.UserExists(ctx, userID)
	if err != nil {
		return errs.Mark(err, ErrCommandDBFailure)
	}
	if !exists {
		return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
	}
	return nil
}
