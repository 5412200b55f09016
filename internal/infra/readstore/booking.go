package readstore

import (
	"context"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	b.id, b.start_time, b.end_time, b.status,
	i.id, i.name, i.owner_id,
	u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT`+bookingViewColumns+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindAllByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+bookingViewColumns+` WHERE b.booker_id = $1 ORDER BY b.start_time DESC, b.id`,
		bookerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by booker", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+bookingViewColumns+` WHERE i.owner_id = $1 ORDER BY b.start_time DESC, b.id`,
		ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by owner", err)
	}
	return collectBookingViews(rows)
}

// FindLastApproved returns the approved booking that started most
// recently at or before now; nil when the item has none.
func (r *BookingReadStore) FindLastApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, item_id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND start_time <= $2
		ORDER BY start_time DESC
		LIMIT 1`, itemID, now)

	ref, err := scanBookingRef(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find last approved booking", err)
	}
	return ref, nil
}

// FindNextApproved returns the earliest approved booking starting
// strictly after now; nil when the item has none.
func (r *BookingReadStore) FindNextApproved(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, item_id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND start_time > $2
		ORDER BY start_time ASC
		LIMIT 1`, itemID, now)

	ref, err := scanBookingRef(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next approved booking", err)
	}
	return ref, nil
}

func (r *BookingReadStore) FindLastApprovedByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*queries.BookingRef, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = ANY($1) AND status = 'APPROVED' AND start_time <= $2
		ORDER BY start_time DESC`, itemIDs, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find last approved bookings", err)
	}
	return collectBookingRefs(rows)
}

func (r *BookingReadStore) FindNextApprovedByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*queries.BookingRef, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = ANY($1) AND status = 'APPROVED' AND start_time > $2
		ORDER BY start_time ASC`, itemIDs, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find next approved bookings", err)
	}
	return collectBookingRefs(rows)
}

func (r *BookingReadStore) HasFinishedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2
			  AND status = 'APPROVED' AND end_time <= $3
		)`, itemID, bookerID, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Item.ID, &v.Item.Name, &v.OwnerID,
		&v.Booker.ID, &v.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	result := []*queries.BookingView{}
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBookingRef(row pgx.Row) (*queries.BookingRef, error) {
	var ref queries.BookingRef
	if err := row.Scan(&ref.ID, &ref.ItemID, &ref.BookerID, &ref.Start, &ref.End); err != nil {
		return nil, err
	}
	return &ref, nil
}

func collectBookingRefs(rows pgx.Rows) ([]*queries.BookingRef, error) {
	defer rows.Close()

	result := []*queries.BookingRef{}
	for rows.Next() {
		ref, err := scanBookingRef(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
