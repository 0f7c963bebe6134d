//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions are serialized by one mutex, work on a cloned snapshot and
// swap it in on commit, so a failed transaction leaves no trace.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpLockRooms           = "bookings.LockRooms"
	OpListOccupancies     = "bookings.ListOccupancies"
	OpCreateBooking       = "bookings.Create"
	OpFindBooking         = "bookings.Find"
	OpUpdateBookingStatus = "bookings.UpdateStatus"
	OpCreatePayment       = "payments.Create"
	OpFindPayment         = "payments.Find"
	OpUpdatePaymentStatus = "payments.UpdateStatus"
	OpUserBookingStats    = "reads.UserBookingStats"
	OpCommit              = "commit"
)

type Store struct {
	mu    sync.Mutex
	state *state
	rooms map[uuid.UUID]struct{}

	hookMu   sync.Mutex
	failures map[string]error
	commits  int
}

type state struct {
	bookings map[uuid.UUID]*booking.Booking
	payments map[string]*payment.Payment
}

func New(roomIDs ...uuid.UUID) *Store {
	s := &Store{
		state: &state{
			bookings: make(map[uuid.UUID]*booking.Booking),
			payments: make(map[string]*payment.Payment),
		},
		rooms:    make(map[uuid.UUID]struct{}),
		failures: make(map[string]error),
	}
	s.AddRooms(roomIDs...)
	return s
}

func (s *Store) AddRooms(ids ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.rooms[id] = struct{}{}
	}
}

// FailOn makes every later call of op return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) injected(op string) error {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	return s.failures[op]
}

// Seed stores a booking and optionally its payment outside any transaction.
func (s *Store) Seed(b *booking.Booking, p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range b.RoomIDs() {
		s.rooms[id] = struct{}{}
	}
	s.state.bookings[b.ID()] = cloneBooking(b)
	if p != nil {
		s.state.payments[p.TransactionID()] = clonePayment(p)
	}
}

// ErrSerializationFailure stands in for a driver serialization or deadlock
// error. Within re-runs the transaction on it, WithinOnce does not.
var ErrSerializationFailure = errs.New("memstore: could not serialize access")

const maxRetries = 3

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err = s.attempt(ctx, fn); !errs.Is(err, ErrSerializationFailure) {
			return err
		}
	}
	return err
}

func (s *Store) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.attempt(ctx, fn)
}

func (s *Store) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, st: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	// mirrors a driver refusing to commit on a dead context
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.injected(OpCommit); err != nil {
		return infra.WrapRepoErr("commit failed", err)
	}
	s.state = tx.st
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s, st: nil}
}

// Inspection helpers read committed state only.

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) BookingByTransactionID(txID string) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.bookingByTxn(txID)
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) Payment(txID string) (*payment.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.payments[txID]
	if !ok {
		return nil, false
	}
	return clonePayment(p), true
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.bookings)
}

func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.payments)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// HeldNights counts inventory-holding bookings that cover the night of date in roomID.
func (s *Store) HeldNights(roomID uuid.UUID, date time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.state.bookings {
		if !b.Status().HoldsInventory() {
			continue
		}
		for _, item := range b.Items() {
			if item.RoomID() == roomID && item.Stay().ContainsNight(date) {
				n++
			}
		}
	}
	return n
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Bookings() shared.BookingRepository { return &bookingRepo{tx: t} }
func (t *memTx) Payments() shared.PaymentRepository { return &paymentRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads         { return &reads{store: t.store, st: t.st} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) LockRooms(_ context.Context, _ sqlc.DBTX, _ []uuid.UUID) error {
	if err := r.tx.store.injected(OpLockRooms); err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *bookingRepo) ListOccupancies(_ context.Context, _ sqlc.DBTX, roomIDs []uuid.UUID, from, to time.Time) ([]availability.Occupancy, error) {
	if err := r.tx.store.injected(OpListOccupancies); err != nil {
		return nil, infra.WrapRepoErr("failed to list room occupancies", err)
	}
	window, err := booking.NewStayRange(from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid occupancy window", err)
	}
	var out []availability.Occupancy
	for _, b := range r.tx.st.bookings {
		if !b.Status().HoldsInventory() {
			continue
		}
		for _, item := range b.Items() {
			if !slices.Contains(roomIDs, item.RoomID()) || !availability.Overlaps(item.Stay(), window) {
				continue
			}
			out = append(out, availability.Occupancy{
				BookingID: b.ID(),
				RoomID:    item.RoomID(),
				Stay:      item.Stay(),
				Status:    b.Status(),
			})
		}
	}
	return out, nil
}

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.tx.store.injected(OpCreateBooking); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	if _, taken := r.tx.st.bookingByTxn(b.TransactionID()); taken {
		return infra.WrapRepoErr("transaction id already in use", nil, infra.KindDuplicateKey)
	}
	for _, id := range b.RoomIDs() {
		if _, ok := r.tx.store.rooms[id]; !ok {
			return infra.WrapRepoErr("failed to create booking room", nil, infra.KindForeignKeyViolated)
		}
	}
	// storage-level exclusion, same as the gist constraint
	for _, other := range r.tx.st.bookings {
		if !other.Status().HoldsInventory() {
			continue
		}
		for _, have := range other.Items() {
			for _, want := range b.Items() {
				if have.RoomID() == want.RoomID() && availability.Overlaps(have.Stay(), want.Stay()) {
					return infra.WrapRepoErr("failed to create booking room", nil, infra.KindExclusionViolated)
				}
			}
		}
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if err := r.tx.store.injected(OpFindBooking); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	b, ok := r.tx.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) FindByTransactionIDForUpdate(_ context.Context, _ sqlc.DBTX, txID string) (*booking.Booking, error) {
	if err := r.tx.store.injected(OpFindBooking); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by transaction id", err)
	}
	b, ok := r.tx.st.bookingByTxn(txID)
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.tx.store.injected(OpUpdateBookingStatus); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if _, ok := r.tx.st.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

type paymentRepo struct {
	tx *memTx
}

func (r *paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if err := r.tx.store.injected(OpCreatePayment); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	if _, ok := r.tx.st.bookings[p.BookingID()]; !ok {
		return infra.WrapRepoErr("failed to create payment", nil, infra.KindForeignKeyViolated)
	}
	if _, taken := r.tx.st.payments[p.TransactionID()]; taken {
		return infra.WrapRepoErr("failed to create payment", nil, infra.KindDuplicateKey)
	}
	r.tx.st.payments[p.TransactionID()] = clonePayment(p)
	return nil
}

func (r *paymentRepo) FindByTransactionIDForUpdate(_ context.Context, _ sqlc.DBTX, txID string) (*payment.Payment, error) {
	if err := r.tx.store.injected(OpFindPayment); err != nil {
		return nil, infra.WrapRepoErr("failed to find payment by transaction id", err)
	}
	p, ok := r.tx.st.payments[txID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return clonePayment(p), nil
}

func (r *paymentRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if err := r.tx.store.injected(OpUpdatePaymentStatus); err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if _, ok := r.tx.st.payments[p.TransactionID()]; !ok {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	r.tx.st.payments[p.TransactionID()] = clonePayment(p)
	return nil
}

type reads struct {
	store *Store
	// st is nil outside a transaction; committed state is read under the store lock
	st *state
}

func (r *reads) UserBookingStats(_ context.Context, userID uuid.UUID) (*shared.UserBookingStats, error) {
	if err := r.store.injected(OpUserBookingStats); err != nil {
		return nil, infra.WrapRepoErr("failed to get user booking stats", err)
	}
	st := r.st
	if st == nil {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
		st = r.store.state
	}
	stats := &shared.UserBookingStats{}
	for _, b := range st.bookings {
		if b.UserID() != userID {
			continue
		}
		stats.TotalBookings++
		if b.Status() == booking.StatusCancelled {
			stats.CancelledBookings++
		}
	}
	return stats, nil
}

func (s *state) clone() *state {
	c := &state{
		bookings: make(map[uuid.UUID]*booking.Booking, len(s.bookings)),
		payments: make(map[string]*payment.Payment, len(s.payments)),
	}
	for id, b := range s.bookings {
		c.bookings[id] = cloneBooking(b)
	}
	for txID, p := range s.payments {
		c.payments[txID] = clonePayment(p)
	}
	return c
}

func (s *state) bookingByTxn(txID string) (*booking.Booking, bool) {
	for _, b := range s.bookings {
		if b.TransactionID() == txID {
			return b, true
		}
	}
	return nil, false
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(b.ID(), b.UserID(), b.Items(), b.Total(), b.Contact(),
		b.TransactionID(), b.CancelProbability(), b.Status(), b.CreatedAt(), b.UpdatedAt())
}

func clonePayment(p *payment.Payment) *payment.Payment {
	return payment.ReconstructPayment(p.ID(), p.UserID(), p.BookingID(), p.Amount(), p.Method(),
		p.Status(), p.TransactionID(), p.CreatedAt(), p.UpdatedAt())
}
