//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingQueriesFixture struct {
	bookings *queriesmock.MockBookingReadStore
	users    *queriesmock.MockUserExistenceStore
	queries  queries.BookingQueries
}

func newBookingQueriesFixture(t *testing.T) *bookingQueriesFixture {
	ctrl := gomock.NewController(t)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	users := queriesmock.NewMockUserExistenceStore(ctrl)
	return &bookingQueriesFixture{
		bookings: bookings,
		users:    users,
		queries:  queries.NewBookingQueries(bookings, users),
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("booker can view own booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()

		f.bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.users.EXPECT().ExistsByID(ctx, view.Booker.ID).Return(true, nil)

		got, err := f.queries.GetByID(ctx, view.Booker.ID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("item owner can view booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()

		f.bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.users.EXPECT().ExistsByID(ctx, view.OwnerID).Return(true, nil)

		got, err := f.queries.GetByID(ctx, view.OwnerID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("third party is denied", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()
		stranger := uuid.New()

		f.bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.users.EXPECT().ExistsByID(ctx, stranger).Return(true, nil)

		_, err := f.queries.GetByID(ctx, stranger, view.ID)
		require.ErrorIs(t, err, queries.ErrNotBookingParty)
	})

	t.Run("missing booking reported before viewer check", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		bookingID := uuid.New()

		f.bookings.EXPECT().FindByID(ctx, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.queries.GetByID(ctx, uuid.New(), bookingID)
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("unknown viewer of an existing booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		view := builder.NewBookingBuilder().BuildView()
		viewer := uuid.New()

		f.bookings.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.users.EXPECT().ExistsByID(ctx, viewer).Return(false, nil)

		_, err := f.queries.GetByID(ctx, viewer, view.ID)
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestBookingQueries_ListForBooker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	t.Run("unknown user wins over unknown filter token", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		bookerID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, bookerID).Return(false, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "SOMEDAY", now, queries.DefaultPage())
		require.ErrorIs(t, err, queries.ErrUserNotFound)

		var uf *booking.UnknownFilterError
		assert.False(t, errors.As(err, &uf))
	})

	t.Run("unknown filter token for a known user", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		bookerID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)

		_, err := f.queries.ListForBooker(ctx, bookerID, "SOMEDAY", now, queries.DefaultPage())
		require.Error(t, err)

		var uf *booking.UnknownFilterError
		require.ErrorAs(t, err, &uf)
		assert.Equal(t, "SOMEDAY", uf.Token)
	})

	t.Run("filter drops rows but keeps store order", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		bookerID := uuid.New()

		future := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookerID = bookerID
			b.Start = now.Add(day)
			b.End = now.Add(2 * day)
		}).BuildView()
		currentApproved := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookerID = bookerID
			b.Start = now.Add(-day)
			b.End = now.Add(day)
			b.Status = booking.StatusApproved
		}).BuildView()
		pastRejected := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookerID = bookerID
			b.Start = now.Add(-3 * day)
			b.End = now.Add(-2 * day)
			b.Status = booking.StatusRejected
		}).BuildView()
		rows := []*queries.BookingView{future, currentApproved, pastRejected}

		f.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil).Times(3)
		f.bookings.EXPECT().FindAllByBookerID(ctx, bookerID).Return(rows, nil).Times(3)

		all, err := f.queries.ListForBooker(ctx, bookerID, "ALL", now, queries.DefaultPage())
		require.NoError(t, err)
		assert.Equal(t, rows, all)

		waiting, err := f.queries.ListForBooker(ctx, bookerID, "WAITING", now, queries.DefaultPage())
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{future}, waiting)

		past, err := f.queries.ListForBooker(ctx, bookerID, "PAST", now, queries.DefaultPage())
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{pastRejected}, past)
	})

	t.Run("page cuts the filtered sequence, not the raw scope", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		bookerID := uuid.New()

		waitingView := func(offset time.Duration) *queries.BookingView {
			return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.BookerID = bookerID
				b.Start = now.Add(offset)
				b.End = now.Add(offset + day)
			}).BuildView()
		}
		rejected := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookerID = bookerID
			b.Start = now.Add(3 * day)
			b.End = now.Add(4 * day)
			b.Status = booking.StatusRejected
		}).BuildView()
		first := waitingView(2 * day)
		second := waitingView(day)
		third := waitingView(time.Hour)
		rows := []*queries.BookingView{rejected, first, second, third}

		f.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil).Times(3)
		f.bookings.EXPECT().FindAllByBookerID(ctx, bookerID).Return(rows, nil).Times(3)

		// The rejected row does not count against the window.
		got, err := f.queries.ListForBooker(ctx, bookerID, "WAITING", now, queries.Page{From: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{second, third}, got)

		short, err := f.queries.ListForBooker(ctx, bookerID, "WAITING", now, queries.Page{From: 2, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{third}, short)

		beyond, err := f.queries.ListForBooker(ctx, bookerID, "WAITING", now, queries.Page{From: 10, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})
}

func TestBookingQueries_ListForOwner(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)

	t.Run("empty result is an empty slice", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		ownerID := uuid.New()

		f.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindAllByOwnerID(ctx, ownerID).Return([]*queries.BookingView{}, nil)

		got, err := f.queries.ListForOwner(ctx, ownerID, "ALL", now, queries.DefaultPage())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("page window applies to owner listings", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		ownerID := uuid.New()

		first := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Start = now.Add(48 * time.Hour)
			b.End = now.Add(72 * time.Hour)
		}).BuildView()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Start = now.Add(24 * time.Hour)
			b.End = now.Add(48 * time.Hour)
		}).BuildView()

		f.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindAllByOwnerID(ctx, ownerID).
			Return([]*queries.BookingView{first, second}, nil)

		got, err := f.queries.ListForOwner(ctx, ownerID, "ALL", now, queries.Page{From: 0, Size: 1})
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{first}, got)
	})
}
