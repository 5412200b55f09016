//go:build unit

package commands_test

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

// Data-backed in-memory stand-ins for the unit of work. Commands only
// see the shared interfaces, so these are enough to drive every branch
// without a database.

type eligibilityKey struct {
	ItemID   uuid.UUID
	AuthorID uuid.UUID
}

type fakeReads struct {
	users        map[uuid.UUID]*shared.UserSnapshot
	credsByEmail map[string]*shared.CredentialsSnapshot
	items        map[uuid.UUID]*shared.ItemSnapshot
	bookings     map[uuid.UUID]*shared.BookingSnapshot
	requests     map[uuid.UUID]bool
	eligible     map[eligibilityKey]bool
}

func newFakeReads() *fakeReads {
	return &fakeReads{
		users:        map[uuid.UUID]*shared.UserSnapshot{},
		credsByEmail: map[string]*shared.CredentialsSnapshot{},
		items:        map[uuid.UUID]*shared.ItemSnapshot{},
		bookings:     map[uuid.UUID]*shared.BookingSnapshot{},
		requests:     map[uuid.UUID]bool{},
		eligible:     map[eligibilityKey]bool{},
	}
}

func (f *fakeReads) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (f *fakeReads) UserByEmail(_ context.Context, email string) (*shared.CredentialsSnapshot, error) {
	c, ok := f.credsByEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (f *fakeReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return it, nil
}

func (f *fakeReads) ItemExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (f *fakeReads) RequestExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.requests[id], nil
}

func (f *fakeReads) HasFinishedApprovedBooking(_ context.Context, itemID, authorID uuid.UUID, _ time.Time) (bool, error) {
	return f.eligible[eligibilityKey{ItemID: itemID, AuthorID: authorID}], nil
}

type statusUpdate struct {
	BookingID uuid.UUID
	Status    booking.Status
	UpdatedAt time.Time
}

type fakeBookingRepo struct {
	created []*booking.Booking
	updates []statusUpdate
}

func (f *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	f.created = append(f.created, b)
	return b.ID(), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, bookingID uuid.UUID, status booking.Status, updatedAt time.Time) error {
	f.updates = append(f.updates, statusUpdate{BookingID: bookingID, Status: status, UpdatedAt: updatedAt})
	return nil
}

type fakeItemRepo struct {
	created []*item.Item
	updated []*item.Item
}

func (f *fakeItemRepo) Create(_ context.Context, _ db.DBTX, it *item.Item) (uuid.UUID, error) {
	f.created = append(f.created, it)
	return it.ID(), nil
}

func (f *fakeItemRepo) Update(_ context.Context, _ db.DBTX, it *item.Item) error {
	f.updated = append(f.updated, it)
	return nil
}

type fakeCommentRepo struct {
	created []*item.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, _ db.DBTX, c *item.Comment) (uuid.UUID, error) {
	f.created = append(f.created, c)
	return c.ID(), nil
}

type fakeUserRepo struct {
	created []*user.User
	updated []*user.User
	deleted []uuid.UUID
	// createErr lets a test simulate a unique-violation on insert.
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User, _ string) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, u)
	return u.ID(), nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ db.DBTX, u *user.User) error {
	f.updated = append(f.updated, u)
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeRequestRepo struct {
	created []*request.ItemRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, _ db.DBTX, r *request.ItemRequest) (uuid.UUID, error) {
	f.created = append(f.created, r)
	return r.ID(), nil
}

type fakeTx struct {
	bookings *fakeBookingRepo
	items    *fakeItemRepo
	comments *fakeCommentRepo
	users    *fakeUserRepo
	requests *fakeRequestRepo
	reads    *fakeReads
}

func (f *fakeTx) Bookings() shared.BookingRepository { return f.bookings }
func (f *fakeTx) Items() shared.ItemRepository       { return f.items }
func (f *fakeTx) Comments() shared.CommentRepository { return f.comments }
func (f *fakeTx) Users() shared.UserRepository       { return f.users }
func (f *fakeTx) Requests() shared.RequestRepository { return f.requests }
func (f *fakeTx) Reads() shared.CommandReads         { return f.reads }
func (f *fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct {
	tx          *fakeTx
	withinCalls int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		bookings: &fakeBookingRepo{},
		items:    &fakeItemRepo{},
		comments: &fakeCommentRepo{},
		users:    &fakeUserRepo{},
		requests: &fakeRequestRepo{},
		reads:    newFakeReads(),
	}}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	f.withinCalls++
	return fn(ctx, f.tx)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

func (f *fakeUoW) reads() *fakeReads {
	return f.tx.reads
}

func (f *fakeUoW) addUser(name string) uuid.UUID {
	id := uuid.New()
	f.reads().users[id] = &shared.UserSnapshot{ID: id, Name: name, Email: name + "@example.com"}
	return id
}

func (f *fakeUoW) addItem(ownerID uuid.UUID, available bool) uuid.UUID {
	id := uuid.New()
	f.reads().items[id] = &shared.ItemSnapshot{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   available,
	}
	return id
}

func (f *fakeUoW) addBooking(itemID, bookerID uuid.UUID, start, end time.Time, status booking.Status) uuid.UUID {
	id := uuid.New()
	f.reads().bookings[id] = &shared.BookingSnapshot{
		ID:       id,
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   status.String(),
	}
	return id
}
