package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
	// Owner of the booked item; needed for access checks, never serialized.
	OwnerID uuid.UUID `json:"-"`
}

// BookingRef is the short booking form attached to item views.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	ItemID   uuid.UUID `json:"itemId"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"-"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	OwnerID     uuid.UUID      `json:"-"`
	RequestID   *uuid.UUID     `json:"requestId,omitempty"`
	LastBooking *BookingRef    `json:"lastBooking,omitempty"`
	NextBooking *BookingRef    `json:"nextBooking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

// ItemSummary is the flat item form used by search results and request
// views.
type ItemSummary struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type RequestView struct {
	ID          uuid.UUID      `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []*ItemSummary `json:"items"`
}
