package shared

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Comments() CommentRepository
	Users() UserRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*CredentialsSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	ItemExists(ctx context.Context, id uuid.UUID) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RequestExists(ctx context.Context, id uuid.UUID) (bool, error)
	// HasFinishedApprovedBooking reports whether the author completed an
	// approved booking of the item before now.
	HasFinishedApprovedBooking(ctx context.Context, itemID, authorID uuid.UUID, now time.Time) (bool, error)
}

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type CredentialsSnapshot struct {
	ID           uuid.UUID
	PasswordHash string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type BookingSnapshot struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, status booking.Status, updatedAt time.Time) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, it *item.Item) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *item.Comment) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}
