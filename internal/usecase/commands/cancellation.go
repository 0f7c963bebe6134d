package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingNotOwned = errs.New("booking is not owned by the requesting user")
)

type CancelResult struct {
	Booking *booking.Booking
	Payment *payment.Payment
}

type CancellationCommands interface {
	// Cancel is the staff hard cancel: Booking Cancelled and Payment claimRefund in one commit.
	Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error)
	// RequestCancellation is the guest soft request; the payment is left untouched.
	RequestCancellation(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error)
}

type cancellationUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier EventNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCancellationCommands(
	uow shared.UnitOfWork,
	notifier EventNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *cancellationUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		now := uc.clock.Now()
		if err := b.Cancel(now); err != nil {
			return err
		}

		p, err := tx.Payments().FindByTransactionIDForUpdate(ctx, tx.DB(), b.TransactionID())
		if err != nil {
			return notFoundAs(err, ErrPaymentNotFound)
		}
		if err := p.ClaimRefund(now); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return err
		}

		result = &CancelResult{Booking: b, Payment: p}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking cancelled",
		"booking_id", bookingID,
		"transaction_id", result.Booking.TransactionID())
	uc.notifier.Publish(ctx, bookingEvent(TopicBookingCancelled, result.Booking))

	return result, nil
}

func (uc *cancellationUseCaseImpl) RequestCancellation(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if !b.IsOwnedBy(userID) {
			return ErrBookingNotOwned
		}
		if err := b.RequestCancellation(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("cancellation requested",
		"booking_id", bookingID,
		"user_id", userID)
	return updated, nil
}
