package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

var (
	ErrPaymentNotFound         = errs.New("payment not found")
	ErrVerificationMismatch    = errs.New("claimed payment outcome does not match the gateway")
	ErrVerificationUnavailable = errs.New("payment verification unavailable")
	ErrSettlementPending       = errs.New("payment settlement is still pending")
	ErrInvalidOutcome          = errs.New("invalid payment outcome")
)

// Outcome is what a gateway callback claims happened to a payment
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeCancelled Outcome = "cancelled"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeFailure, OutcomeCancelled:
		return true
	}
	return false
}

func (o Outcome) expectsPaid() bool {
	return o == OutcomeSuccess
}

// settledBy reports whether a payment in status s already reflects the
// gateway's verdict for o. Failed and Cancelled are both final for an unpaid
// transaction, whichever callback arrived first.
func (o Outcome) settledBy(s payment.Status) bool {
	if o.expectsPaid() {
		return s == payment.StatusCompleted
	}
	return s == payment.StatusFailed || s == payment.StatusCancelled
}

type ReconcileResult struct {
	Booking *booking.Booking
	Payment *payment.Payment
	// Applied is false when the payment had already settled to the verified outcome
	Applied bool
}

type SettlementCommands interface {
	Reconcile(ctx context.Context, transactionID string, claimed Outcome) (*ReconcileResult, error)
}

type settlementUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier EventNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewSettlementCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier EventNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *settlementUseCaseImpl) Reconcile(ctx context.Context, transactionID string, claimed Outcome) (*ReconcileResult, error) {
	if !claimed.IsValid() {
		return nil, errs.Wrapf(ErrInvalidOutcome, "%q", string(claimed))
	}
	if transactionID == "" {
		return nil, ErrPaymentNotFound
	}

	// the gateway is the source of truth; verify before touching any row
	verified, err := uc.gateway.Verify(ctx, transactionID)
	if err != nil {
		return nil, errs.Mark(err, ErrVerificationUnavailable)
	}
	if verified.Status != GatewayPaid && verified.Status != GatewayNotPaid {
		return nil, errs.Wrapf(ErrSettlementPending, "gateway status %q", verified.Title)
	}
	paid := verified.Status == GatewayPaid
	if paid != claimed.expectsPaid() {
		return nil, errs.Wrapf(ErrVerificationMismatch, "claimed %s but gateway reports %s", claimed, verified.Status)
	}

	result := &ReconcileResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByTransactionIDForUpdate(ctx, tx.DB(), transactionID)
		if err != nil {
			return notFoundAs(err, ErrPaymentNotFound)
		}
		p, err := tx.Payments().FindByTransactionIDForUpdate(ctx, tx.DB(), transactionID)
		if err != nil {
			return notFoundAs(err, ErrPaymentNotFound)
		}
		result.Booking, result.Payment = b, p

		if paid && verified.Amount != p.Amount() {
			return errs.Wrapf(ErrVerificationMismatch, "gateway amount %s differs from payment amount %s", verified.Amount, p.Amount())
		}

		if claimed.settledBy(p.Status()) {
			return nil
		}

		if err := uc.apply(b, p, claimed, verified.PaymentType); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		result.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Applied {
		uc.logger.Info("payment already settled",
			"transaction_id", transactionID,
			"status", result.Payment.Status().String())
		return result, nil
	}

	uc.logger.Info("payment settled",
		"transaction_id", transactionID,
		"payment_status", result.Payment.Status().String(),
		"booking_status", result.Booking.Status().String())

	if claimed == OutcomeSuccess {
		uc.notifier.Publish(ctx, Event{
			Topic: TopicPaymentSettled,
			Roles: staffAudience(),
			Payload: PaymentEventPayload{
				PaymentID:     result.Payment.ID().String(),
				BookingID:     result.Booking.ID().String(),
				TransactionID: transactionID,
				Status:        result.Payment.Status().String(),
				Method:        result.Payment.Method(),
				Amount:        result.Payment.Amount().String(),
			},
		})
	}
	return result, nil
}

// apply moves the payment first; a payment that is not Pending fails before the booking is touched.
func (uc *settlementUseCaseImpl) apply(b *booking.Booking, p *payment.Payment, claimed Outcome, paymentType string) error {
	now := uc.clock.Now()
	switch claimed {
	case OutcomeSuccess:
		if err := p.Complete(paymentType, now); err != nil {
			return err
		}
		return b.Confirm(now)
	case OutcomeCancelled:
		if err := p.Cancel(now); err != nil {
			return err
		}
		return b.MarkFailed(now)
	default:
		if err := p.Fail(now); err != nil {
			return err
		}
		return b.MarkFailed(now)
	}
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
