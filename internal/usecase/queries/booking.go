package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")
	ErrNotBookingParty = errs.New("access denied: not the booker or the item owner")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// Scope queries return bookings ordered by start descending; ties keep
	// store order.
	FindAllByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*BookingView, error)
	FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	FindLastApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	FindNextApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	// Batch variants: last ordered by start descending, next ascending, so
	// the first row per item is the winner.
	FindLastApprovedByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*BookingRef, error)
	FindNextApprovedByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*BookingRef, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type UserExistenceStore interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, viewerID, bookingID uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the party check; used for read-after-write
	// responses inside commands.
	GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	// Listings page over the filtered sequence, so a window always holds
	// rows matching the state token.
	ListForBooker(ctx context.Context, bookerID uuid.UUID, filterToken string, now time.Time, page Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filterToken string, now time.Time, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserExistenceStore
}

func NewBookingQueries(bookings BookingReadStore, users UserExistenceStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("booking with id %s not found", bookingID), ErrBookingNotFound)
		}
		return nil, err
	}

	if err := q.checkUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	if viewerID != view.Booker.ID && viewerID != view.OwnerID {
		return nil, errs.Mark(
			errs.Newf("user %s is not a party to booking %s", viewerID, bookingID),
			ErrNotBookingParty)
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("booking with id %s not found", bookingID), ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, filterToken string, now time.Time, page Page) ([]*BookingView, error) {
	filter, err := q.checkUserAndParseFilter(ctx, bookerID, filterToken)
	if err != nil {
		return nil, err
	}

	rows, err := q.bookings.FindAllByBookerID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	return pageFiltered(rows, filter, now, page), nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, filterToken string, now time.Time, page Page) ([]*BookingView, error) {
	filter, err := q.checkUserAndParseFilter(ctx, ownerID, filterToken)
	if err != nil {
		return nil, err
	}

	rows, err := q.bookings.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return pageFiltered(rows, filter, now, page), nil
}

// User existence is checked before the filter token is parsed; an
// unknown user with a bad token reports NotFound, not UnknownFilter.
func (q *bookingQueriesImpl) checkUserAndParseFilter(ctx context.Context, userID uuid.UUID, filterToken string) (booking.Filter, error) {
	if err := q.checkUserExists(ctx, userID); err != nil {
		return "", err
	}
	return booking.ParseFilter(filterToken)
}

func (q *bookingQueriesImpl) checkUserExists(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
	}
	return nil
}

// applyFilter keeps the store's start-descending order; it only drops
// rows the predicate rejects.
func applyFilter(rows []*BookingView, filter booking.Filter, now time.Time) []*BookingView {
	out := make([]*BookingView, 0, len(rows))
	for _, b := range rows {
		if filter.Matches(b.Start, b.End, booking.Status(b.Status), now) {
			out = append(out, b)
		}
	}
	return out
}

// The state predicate runs here rather than in SQL, so the page window
// has to cut the filtered sequence, not the scope query.
func pageFiltered(rows []*BookingView, filter booking.Filter, now time.Time, page Page) []*BookingView {
	filtered := applyFilter(rows, filter, now)
	lo, hi := page.Cut(len(filtered))
	return filtered[lo:hi]
}
