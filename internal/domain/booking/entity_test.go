//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type periodCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.True(t, actual.IsWaiting())
	})

	t.Run("period validation", func(t *testing.T) {
		runPeriodCases(t, []periodCase{
			{
				name:   "one hour rental",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(time.Hour) },
			},
			{
				name:   "one nanosecond rental",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(time.Nanosecond) },
			},
			{
				name:   "end equals start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start },
				errIs:  booking.ErrZeroLengthPeriod,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(-time.Hour) },
				errIs:  booking.ErrInvertedPeriod,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		first, err1 := b.BuildDomain()
		second, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestBooking_Resolve(t *testing.T) {
	t.Run("approve moves waiting to approved", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Resolve(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.False(t, b.IsWaiting())
	})

	t.Run("reject moves waiting to rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Resolve(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("second resolve fails even with the same decision", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Resolve(true))

		err = b.Resolve(true)
		require.ErrorIs(t, err, booking.ErrAlreadyResolved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("resolve on a reconstructed rejected booking fails", func(t *testing.T) {
		now := time.Now()
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(),
			booking.ReconstructPeriod(now, now.Add(time.Hour)),
			booking.StatusRejected,
			now, now,
		)

		err := b.Resolve(true)
		require.ErrorIs(t, err, booking.ErrAlreadyResolved)
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func runPeriodCases(t *testing.T, cases []periodCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
