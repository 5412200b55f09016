package repository

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapWriteErr maps postgres constraint violations onto repository
// error kinds.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (id, item_id, booker_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), b.Status().String())
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, status booking.Status, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		bookingID, status.String(), updatedAt)
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
