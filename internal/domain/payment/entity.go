package payment

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultMethod = "aamarpay"

var (
	ErrInvalidStatus          = errs.New("invalid payment status")
	ErrInvalidStateTransition = errs.New("invalid payment state transition")
	ErrAmountNotPositive      = errs.New("payment amount must be positive")
	ErrMissingTransactionID   = errs.New("payment transaction id is required")
)

type Payment struct {
	id            uuid.UUID
	userID        uuid.UUID
	bookingID     uuid.UUID
	amount        booking.Money
	method        string
	status        Status
	transactionID string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment opens the settlement attempt for a pending booking.
func NewPayment(b *booking.Booking, method string, now time.Time) (*Payment, error) {
	if !b.Total().IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if b.TransactionID() == "" {
		return nil, ErrMissingTransactionID
	}
	if strings.TrimSpace(method) == "" {
		method = DefaultMethod
	}

	return &Payment{
		id:            uuid.New(),
		userID:        b.UserID(),
		bookingID:     b.ID(),
		amount:        b.Total(),
		method:        method,
		status:        StatusPending,
		transactionID: b.TransactionID(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(
	id, userID, bookingID uuid.UUID,
	amount booking.Money,
	method string,
	status Status,
	transactionID string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		userID:        userID,
		bookingID:     bookingID,
		amount:        amount,
		method:        method,
		status:        status,
		transactionID: transactionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) UserID() uuid.UUID     { return p.userID }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Amount() booking.Money { return p.amount }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }

// Complete records a verified capture. An empty method keeps the current one.
func (p *Payment) Complete(method string, now time.Time) error {
	if err := p.transitionTo(StatusCompleted, now); err != nil {
		return err
	}
	if m := strings.TrimSpace(method); m != "" {
		p.method = m
	}
	return nil
}

func (p *Payment) Fail(now time.Time) error {
	return p.transitionTo(StatusFailed, now)
}

func (p *Payment) Cancel(now time.Time) error {
	return p.transitionTo(StatusCancelled, now)
}

func (p *Payment) ClaimRefund(now time.Time) error {
	return p.transitionTo(StatusClaimRefund, now)
}

func (p *Payment) MarkRefunded(now time.Time) error {
	return p.transitionTo(StatusRefunded, now)
}

func (p *Payment) transitionTo(to Status, now time.Time) error {
	if !p.status.CanTransitionTo(to) {
		return &TransitionError{From: p.status, To: to}
	}
	p.status = to
	p.updatedAt = now
	return nil
}
