package commands

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/txid"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable         = errs.New("room is not available for the selected dates")
	ErrRoomNotFound            = errs.New("room not found")
	ErrPaymentInitiationFailed = errs.New("payment initiation failed")
	ErrReservationTimeout      = errs.New("reservation timed out")
	ErrDuplicateTransactionID  = errs.New("duplicate transaction id")
)

// maxTransactionIDAttempts bounds regeneration after a transaction id collision
const maxTransactionIDAttempts = 2

type ReserveLine struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Price    booking.Money
}

type ReserveRequest struct {
	UserID  uuid.UUID
	Lines   []ReserveLine
	Contact Customer
}

type ReserveResult struct {
	BookingID     uuid.UUID
	TransactionID string
	PaymentURL    string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	scorer   RiskScorer
	notifier EventNotifier
	txids    txid.Generator
	clock    clock.Clock
	timeout  time.Duration
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	scorer RiskScorer,
	notifier EventNotifier,
	txids txid.Generator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		scorer:   scorer,
		notifier: notifier,
		txids:    txids,
		clock:    clk,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	items, err := buildLineItems(req.Lines)
	if err != nil {
		return nil, err
	}
	total, err := booking.CalculateTotal(items)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContactInfo(req.Contact.Name, req.Contact.Email, req.Contact.Phone, req.Contact.Address, req.Contact.City)
	if err != nil {
		return nil, err
	}

	probability := uc.scoreRisk(ctx, req.UserID, items, total)

	reserveCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var created *booking.Booking
	var result *ReserveResult
	// single attempt: a retry would open a second gateway checkout
	err = uc.uow.WithinOnce(reserveCtx, func(ctx context.Context, tx shared.Tx) error {
		roomIDs := booking.RoomIDsOf(items)
		if err := tx.Bookings().LockRooms(ctx, tx.DB(), roomIDs); err != nil {
			return err
		}

		from, to := availability.Window(items)
		existing, err := tx.Bookings().ListOccupancies(ctx, tx.DB(), roomIDs, from, to)
		if err != nil {
			return err
		}
		if conflict, found := availability.FirstConflict(existing, items); found {
			return errs.Wrap(ErrRoomUnavailable, conflict.String())
		}

		b, err := uc.insertBooking(ctx, tx, req.UserID, items, contact, probability)
		if err != nil {
			return err
		}

		initiated, err := uc.gateway.Initiate(ctx, InitiateRequest{
			Amount:        b.Total(),
			TransactionID: b.TransactionID(),
			Customer:      req.Contact,
			Description:   "Hotel booking " + b.TransactionID(),
		})
		if err != nil {
			return errs.Mark(err, ErrPaymentInitiationFailed)
		}
		if initiated.PaymentURL == "" {
			return errs.Wrap(ErrPaymentInitiationFailed, "gateway returned no payment url")
		}

		p, err := payment.NewPayment(b, payment.DefaultMethod, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return err
		}

		created = b
		result = &ReserveResult{
			BookingID:     b.ID(),
			TransactionID: b.TransactionID(),
			PaymentURL:    initiated.PaymentURL,
		}
		return nil
	})
	if err != nil {
		return nil, uc.classifyReserveError(reserveCtx, err)
	}

	uc.logger.Info("booking reserved",
		"booking_id", created.ID(),
		"transaction_id", created.TransactionID(),
		"rooms", len(items),
		"total", created.Total().String())
	uc.notifier.Publish(ctx, bookingEvent(TopicBookingCreated, created))

	return result, nil
}

func (uc *reservationUseCaseImpl) insertBooking(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	items []booking.LineItem,
	contact booking.ContactInfo,
	probability float64,
) (*booking.Booking, error) {
	for attempt := 1; attempt <= maxTransactionIDAttempts; attempt++ {
		b, err := booking.NewBooking(userID, items, contact, uc.txids.Next(), probability, uc.clock.Now())
		if err != nil {
			return nil, err
		}

		err = tx.Bookings().Create(ctx, tx.DB(), b)
		if err == nil {
			return b, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		uc.logger.Warn("transaction id collision",
			"transaction_id", b.TransactionID(),
			"attempt", attempt)
	}
	return nil, ErrDuplicateTransactionID
}

func (uc *reservationUseCaseImpl) classifyReserveError(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return errs.Mark(err, ErrReservationTimeout)
	case errs.IsAny(err, ErrRoomUnavailable, ErrPaymentInitiationFailed, ErrDuplicateTransactionID):
		return err
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(err, ErrRoomUnavailable)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrRoomNotFound)
	default:
		return err
	}
}

// scoreRisk never fails the reservation; missing history scores as a first-time guest.
func (uc *reservationUseCaseImpl) scoreRisk(ctx context.Context, userID uuid.UUID, items []booking.LineItem, total booking.Money) float64 {
	stats, err := uc.uow.CommandReads().UserBookingStats(ctx, userID)
	if err != nil {
		uc.logger.Warn("failed to load booking history for risk scoring", "user_id", userID, "error", err.Error())
		stats = &shared.UserBookingStats{}
	}

	first := items[0].Stay()
	daysAhead := int(math.Ceil(first.CheckIn().Sub(uc.clock.Now()).Hours() / 24))
	if daysAhead < 0 {
		daysAhead = 0
	}

	return uc.scorer.Predict(ctx, RiskFeatures{
		UserTotalBookings: stats.TotalBookings,
		UserCancelRate:    stats.CancelRate(),
		Price:             total.Major(),
		DurationDays:      first.Nights(),
		DaysBeforeCheckIn: daysAhead,
		PaymentCompleted:  0,
	})
}

func buildLineItems(lines []ReserveLine) ([]booking.LineItem, error) {
	if len(lines) == 0 {
		return nil, booking.ErrNoLineItems
	}
	items := make([]booking.LineItem, 0, len(lines))
	for _, line := range lines {
		stay, err := booking.NewStayRange(line.CheckIn, line.CheckOut)
		if err != nil {
			return nil, err
		}
		item, err := booking.NewLineItem(line.RoomID, stay, line.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
