package booking

import (
	"math"
	"slices"
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange       = errs.New("check-out date must be after check-in date")
	ErrInvalidPrice           = errs.New("price must be a positive number")
	ErrInvalidAmount          = errs.New("invalid amount")
	ErrInvalidContact         = errs.New("contact name, email and phone are required")
	ErrRoomRequired           = errs.New("room id is required")
	ErrNoLineItems            = errs.New("booking must contain at least one room")
	ErrMissingTransactionID   = errs.New("transaction id is required")
	ErrInvalidStatus          = errs.New("invalid booking status")
	ErrInvalidStateTransition = errs.New("invalid state transition")
)

type Booking struct {
	id                uuid.UUID
	userID            uuid.UUID
	items             []LineItem
	total             Money
	contact           ContactInfo
	transactionID     string
	cancelProbability float64
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
}

func NewBooking(
	userID uuid.UUID,
	items []LineItem,
	contact ContactInfo,
	transactionID string,
	cancelProbability float64,
	now time.Time,
) (*Booking, error) {
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}
	total, err := CalculateTotal(items)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:                uuid.New(),
		userID:            userID,
		items:             slices.Clone(items),
		total:             total,
		contact:           contact,
		transactionID:     transactionID,
		cancelProbability: clampProbability(cancelProbability),
		status:            StatusPending,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	items []LineItem,
	total Money,
	contact ContactInfo,
	transactionID string,
	cancelProbability float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		userID:            userID,
		items:             items,
		total:             total,
		contact:           contact,
		transactionID:     transactionID,
		cancelProbability: cancelProbability,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) Items() []LineItem          { return slices.Clone(b.items) }
func (b *Booking) Total() Money               { return b.total }
func (b *Booking) Contact() ContactInfo       { return b.contact }
func (b *Booking) TransactionID() string      { return b.transactionID }
func (b *Booking) CancelProbability() float64 { return b.cancelProbability }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// RoomIDs returns the distinct rooms of the booking in a stable order.
func (b *Booking) RoomIDs() []uuid.UUID {
	return RoomIDsOf(b.items)
}

func (b *Booking) Confirm(now time.Time) error {
	return b.transitionTo(StatusBooked, now)
}

func (b *Booking) MarkFailed(now time.Time) error {
	return b.transitionTo(StatusFailed, now)
}

func (b *Booking) RequestCancellation(now time.Time) error {
	return b.transitionTo(StatusInitiateCancel, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transitionTo(StatusCancelled, now)
}

func (b *Booking) transitionTo(to Status, now time.Time) error {
	if !b.status.CanTransitionTo(to) {
		return &TransitionError{From: b.status, To: to}
	}
	b.status = to
	b.updatedAt = now
	return nil
}

func RoomIDsOf(items []LineItem) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.RoomID())
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return slices.Compact(ids)
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
