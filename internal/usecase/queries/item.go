package queries

import (
	"context"
	"strings"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*ItemView, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*ItemSummary, error)
}

type CommentReadStore interface {
	FindAllByItemID(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
	FindAllByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*CommentView, error)
}

type ItemQueries interface {
	// GetByID returns the item with its comments; last/next booking are
	// attached only when the viewer owns the item.
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID, now time.Time) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemSummary, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	users    UserExistenceStore
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, users UserExistenceStore) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, comments: comments, users: users}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID, now time.Time) (*ItemView, error) {
	if err := q.checkUserExists(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("item with id %s not found", itemID), ErrItemNotFound)
		}
		return nil, err
	}

	// Booking details stay hidden from everyone but the owner.
	if view.OwnerID == viewerID {
		if view.LastBooking, err = q.bookings.FindLastApproved(ctx, itemID, now); err != nil {
			return nil, err
		}
		if view.NextBooking, err = q.bookings.FindNextApproved(ctx, itemID, now); err != nil {
			return nil, err
		}
	}

	if view.Comments, err = q.comments.FindAllByItemID(ctx, itemID); err != nil {
		return nil, err
	}

	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, page Page) ([]*ItemView, error) {
	if err := q.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	views, err := q.items.FindAllByOwnerID(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	itemIDs := make([]uuid.UUID, len(views))
	for i, v := range views {
		itemIDs[i] = v.ID
	}

	lastRows, err := q.bookings.FindLastApprovedByItemIDs(ctx, itemIDs, now)
	if err != nil {
		return nil, err
	}
	nextRows, err := q.bookings.FindNextApprovedByItemIDs(ctx, itemIDs, now)
	if err != nil {
		return nil, err
	}
	commentRows, err := q.comments.FindAllByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	last := firstBookingPerItem(lastRows)
	next := firstBookingPerItem(nextRows)
	comments := groupCommentsByItem(commentRows)

	for _, v := range views {
		v.LastBooking = last[v.ID]
		v.NextBooking = next[v.ID]
		if c, ok := comments[v.ID]; ok {
			v.Comments = c
		} else {
			v.Comments = []*CommentView{}
		}
	}

	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemSummary, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemSummary{}, nil
	}
	return q.items.Search(ctx, text, page.Limit(), page.Offset())
}

func (q *itemQueriesImpl) checkUserExists(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Mark(errs.Newf("user with id %s not found", userID), ErrUserNotFound)
	}
	return nil
}

// firstBookingPerItem keeps the first row delivered for each item and
// silently drops the rest; the store's ordering makes that row the
// last/next winner.
func firstBookingPerItem(rows []*BookingRef) map[uuid.UUID]*BookingRef {
	out := make(map[uuid.UUID]*BookingRef, len(rows))
	for _, r := range rows {
		if _, ok := out[r.ItemID]; !ok {
			out[r.ItemID] = r
		}
	}
	return out
}

func groupCommentsByItem(rows []*CommentView) map[uuid.UUID][]*CommentView {
	out := make(map[uuid.UUID][]*CommentView)
	for _, c := range rows {
		out[c.ItemID] = append(out[c.ItemID], c)
	}
	return out
}
