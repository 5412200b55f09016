//go:build unit || e2e

package builder

import (
	"time"

	dombooking "gearshare/internal/domain/booking"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Cordless drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Test Booker",
		Start:      start,
		End:        start.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.BookerID, period), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:      b.ID,
		Start:   b.Start,
		End:     b.End,
		Status:  b.Status.String(),
		Item:    queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker:  queries.UserRef{ID: b.BookerID, Name: b.BookerName},
		OwnerID: b.OwnerID,
	}
}

func (b *BookingBuilder) BuildRef() *queries.BookingRef {
	return &queries.BookingRef{
		ID:       b.ID,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
