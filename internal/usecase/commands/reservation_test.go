//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/memstore"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memstore.Store
	gateway  *commandsmock.MockPaymentGateway
	scorer   *commandsmock.MockRiskScorer
	notifier *commandsmock.MockEventNotifier
	txids    *seqTxIDs
	roomA    uuid.UUID
	roomB    uuid.UUID
	timeout  time.Duration
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roomA, s.roomB = uuid.New(), uuid.New()
	s.store = memstore.New(s.roomA, s.roomB)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.scorer = commandsmock.NewMockRiskScorer(s.ctrl)
	s.notifier = commandsmock.NewMockEventNotifier(s.ctrl)
	s.txids = &seqTxIDs{}
	s.timeout = 5 * time.Second

	s.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.25).AnyTimes()
}

func (s *ReservationSuite) useCase() commands.ReservationCommands {
	return commands.NewReservationCommands(
		s.store, s.gateway, s.scorer, s.notifier, s.txids, newClock(),
		config.ReservationConfig{Timeout: s.timeout}, discardLogger(),
	)
}

func (s *ReservationSuite) request(lines ...builder.RoomLine) commands.ReserveRequest {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Lines = lines }).BuildReserveRequest()
}

func line(room uuid.UUID, in, out time.Time, priceMinor int64) builder.RoomLine {
	return builder.RoomLine{RoomID: room, CheckIn: in, CheckOut: out, Price: booking.NewMoney(priceMinor)}
}

func (s *ReservationSuite) expectInitiateOK() *gomock.Call {
	return s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req commands.InitiateRequest) (commands.InitiateResult, error) {
			return commands.InitiateResult{PaymentURL: "https://sandbox.aamarpay.com/pay/" + req.TransactionID}, nil
		})
}

// seed commits a booking through the use case so the store holds real state.
func (s *ReservationSuite) seed(lines ...builder.RoomLine) *commands.ReserveResult {
	s.expectInitiateOK()
	s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())
	res, err := s.useCase().Reserve(context.Background(), s.request(lines...))
	s.Require().NoError(err)
	return res
}

func (s *ReservationSuite) TestReserve_Success() {
	req := s.request(
		line(s.roomA, date(3, 1), date(3, 3), 10000),
		line(s.roomB, date(3, 1), date(3, 4), 5000),
	)

	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in commands.InitiateRequest) (commands.InitiateResult, error) {
			s.Equal("350.00", in.Amount.String())
			s.Equal("TXN-TEST-0001", in.TransactionID)
			s.Equal(req.Contact.Email, in.Customer.Email)
			return commands.InitiateResult{PaymentURL: "https://pay.example/abc"}, nil
		})
	s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev commands.Event) {
		s.Equal(commands.TopicBookingCreated, ev.Topic)
		s.ElementsMatch([]string{"admin", "receptionist"}, ev.Roles)
		payload, ok := ev.Payload.(commands.BookingEventPayload)
		s.Require().True(ok)
		s.Equal("pending", payload.Status)
		s.Equal("350.00", payload.TotalAmount)
	}).Times(1)

	res, err := s.useCase().Reserve(context.Background(), req)
	s.Require().NoError(err)

	s.Equal("https://pay.example/abc", res.PaymentURL)
	s.Equal("TXN-TEST-0001", res.TransactionID)

	b, ok := s.store.Booking(res.BookingID)
	s.Require().True(ok)
	s.Equal(booking.StatusPending, b.Status())
	s.Equal(int64(35000), b.Total().Minor())
	s.Equal(0.25, b.CancelProbability())
	s.Equal(req.UserID, b.UserID())

	p, ok := s.store.Payment(res.TransactionID)
	s.Require().True(ok)
	s.Equal(payment.StatusPending, p.Status())
	s.Equal(b.Total(), p.Amount())
	s.Equal(b.ID(), p.BookingID())
	s.Equal(payment.DefaultMethod, p.Method())
}

func (s *ReservationSuite) TestReserve_InputValidation() {
	cases := []struct {
		name  string
		req   commands.ReserveRequest
		errIs error
	}{
		{"no rooms", s.request(), booking.ErrNoLineItems},
		{"checkout before checkin", s.request(line(s.roomA, date(3, 3), date(3, 1), 10000)), booking.ErrInvalidDateRange},
		{"same day stay", s.request(line(s.roomA, date(3, 3), date(3, 3), 10000)), booking.ErrInvalidDateRange},
		{"non positive price", s.request(line(s.roomA, date(3, 1), date(3, 3), 0)), booking.ErrInvalidPrice},
		{"price times nights overflows", s.request(line(s.roomA, date(3, 1), date(3, 7), 3_500_000_000_000_000_000)), booking.ErrInvalidPrice},
		{"total across rooms overflows", s.request(
			line(s.roomA, date(3, 1), date(3, 2), math.MaxInt64/2+1),
			line(s.roomB, date(3, 1), date(3, 2), math.MaxInt64/2+1),
		), booking.ErrInvalidAmount},
		{"missing contact", func() commands.ReserveRequest {
			r := s.request(line(s.roomA, date(3, 1), date(3, 3), 10000))
			r.Contact.Phone = ""
			return r
		}(), booking.ErrInvalidContact},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.useCase().Reserve(context.Background(), tc.req)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			s.Equal(0, s.store.BookingCount())
		})
	}
}

func (s *ReservationSuite) TestReserve_OverlapRejected() {
	s.seed(line(s.roomA, date(3, 1), date(3, 5), 10000))

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 4), date(3, 6), 10000)))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrRoomUnavailable), "got %v", err)
	s.Equal(1, s.store.BookingCount())
	s.Equal(1, s.store.PaymentCount())
}

func (s *ReservationSuite) TestReserve_BackToBackAllowed() {
	s.seed(line(s.roomA, date(3, 1), date(3, 3), 10000))
	second := s.seed(line(s.roomA, date(3, 3), date(3, 5), 10000))
	third := s.seed(line(s.roomA, date(2, 27), date(3, 1), 10000))

	s.NotEqual(second.BookingID, third.BookingID)
	s.Equal(3, s.store.BookingCount())
	s.Equal(1, s.store.HeldNights(s.roomA, date(3, 3)))
}

func (s *ReservationSuite) TestReserve_ReleasedStaysDoNotBlock() {
	first := s.seed(line(s.roomA, date(3, 1), date(3, 3), 10000))

	// a failed settlement releases the rooms
	b, _ := s.store.Booking(first.BookingID)
	p, _ := s.store.Payment(first.TransactionID)
	s.Require().NoError(b.MarkFailed(fixedNow))
	s.Require().NoError(p.Fail(fixedNow))
	s.store.Seed(b, p)

	s.seed(line(s.roomA, date(3, 1), date(3, 3), 10000))
	s.Equal(1, s.store.HeldNights(s.roomA, date(3, 1)))
}

func (s *ReservationSuite) TestReserve_MultiRoomIsAtomic() {
	s.seed(line(s.roomB, date(3, 2), date(3, 3), 5000))

	_, err := s.useCase().Reserve(context.Background(), s.request(
		line(s.roomA, date(3, 1), date(3, 4), 10000),
		line(s.roomB, date(3, 1), date(3, 4), 5000),
	))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrRoomUnavailable))
	s.Equal(1, s.store.BookingCount())
	s.Equal(0, s.store.HeldNights(s.roomA, date(3, 1)), "the free room must not be held either")
}

func (s *ReservationSuite) TestReserve_SameRoomTwiceInOneRequest() {
	_, err := s.useCase().Reserve(context.Background(), s.request(
		line(s.roomA, date(3, 1), date(3, 4), 10000),
		line(s.roomA, date(3, 3), date(3, 5), 10000),
	))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrRoomUnavailable))
	s.Equal(0, s.store.BookingCount())
}

func (s *ReservationSuite) TestReserve_GatewayFailureRollsBack() {
	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(commands.InitiateResult{}, errors.New("gateway 500"))

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrPaymentInitiationFailed), "got %v", err)
	s.Equal(0, s.store.BookingCount())
	s.Equal(0, s.store.PaymentCount())

	// the room is immediately bookable again
	s.seed(line(s.roomA, date(3, 1), date(3, 3), 10000))
}

func (s *ReservationSuite) TestReserve_GatewayReturnsNoURL() {
	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(commands.InitiateResult{}, nil)

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))

	s.True(errs.Is(err, commands.ErrPaymentInitiationFailed))
	s.Equal(0, s.store.BookingCount())
}

func (s *ReservationSuite) TestReserve_PaymentInsertFailureRollsBack() {
	s.expectInitiateOK()
	s.store.FailOn(memstore.OpCreatePayment, errors.New("disk full"))

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))

	s.Require().Error(err)
	s.Equal(0, s.store.BookingCount(), "a booking without its payment must never commit")
}

func (s *ReservationSuite) TestReserve_SerializationFailureDoesNotReopenCheckout() {
	s.expectInitiateOK().Times(1)
	s.store.FailOn(memstore.OpCommit, memstore.ErrSerializationFailure)

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))

	s.Require().Error(err)
	s.True(errs.Is(err, memstore.ErrSerializationFailure), "got %v", err)
	s.Equal(0, s.store.BookingCount())
	s.Equal(0, s.store.PaymentCount())
}

func (s *ReservationSuite) TestReserve_UnknownRoom() {
	_, err := s.useCase().Reserve(context.Background(), s.request(line(uuid.New(), date(3, 1), date(3, 3), 10000)))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrRoomNotFound), "got %v", err)
}

func (s *ReservationSuite) TestReserve_Timeout() {
	s.timeout = 30 * time.Millisecond
	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ commands.InitiateRequest) (commands.InitiateResult, error) {
			<-ctx.Done()
			return commands.InitiateResult{}, ctx.Err()
		})

	_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrReservationTimeout), "got %v", err)
	s.Equal(0, s.store.BookingCount())
}

func (s *ReservationSuite) TestReserve_TransactionIDCollision() {
	s.Run("retries once with a fresh id", func() {
		existing := s.seed(line(s.roomB, date(4, 1), date(4, 2), 5000))
		s.txids.scripted = []string{existing.TransactionID}
		s.expectInitiateOK()
		s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		res, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))
		s.Require().NoError(err)
		s.NotEqual(existing.TransactionID, res.TransactionID)
	})

	s.Run("gives up after repeated collisions", func() {
		s.txids.scripted = []string{"TXN-TEST-0001", "TXN-TEST-0001"}

		_, err := s.useCase().Reserve(context.Background(), s.request(line(s.roomA, date(5, 1), date(5, 3), 10000)))
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDuplicateTransactionID), "got %v", err)
	})
}

func (s *ReservationSuite) TestReserve_RiskFeatures() {
	scorer := commandsmock.NewMockRiskScorer(s.ctrl)
	scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f commands.RiskFeatures) float64 {
			s.Equal(int64(0), f.UserTotalBookings)
			s.Equal(0.0, f.UserCancelRate)
			s.Equal(200.0, f.Price)
			s.Equal(2, f.DurationDays)
			s.Equal(50, f.DaysBeforeCheckIn)
			s.Equal(0, f.PaymentCompleted)
			return 0.9
		})
	s.expectInitiateOK()
	s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

	uc := commands.NewReservationCommands(s.store, s.gateway, scorer, s.notifier, s.txids, newClock(),
		config.ReservationConfig{Timeout: time.Second}, discardLogger())

	// history lookup failure still lets the reservation through
	s.store.FailOn(memstore.OpUserBookingStats, errors.New("replica down"))
	res, err := uc.Reserve(context.Background(), s.request(line(s.roomA, date(3, 1), date(3, 3), 10000)))
	s.Require().NoError(err)

	b, _ := s.store.Booking(res.BookingID)
	s.Equal(0.9, b.CancelProbability())
}

// Many guests race for the same nights; only one may win.
func TestReserve_NoDoubleBookingUnderConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	room := uuid.New()
	store := memstore.New(room)

	gateway := commandsmock.NewMockPaymentGateway(ctrl)
	gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req commands.InitiateRequest) (commands.InitiateResult, error) {
			time.Sleep(time.Millisecond)
			return commands.InitiateResult{PaymentURL: "https://pay.example/" + req.TransactionID}, nil
		}).AnyTimes()
	scorer := commandsmock.NewMockRiskScorer(ctrl)
	scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.0).AnyTimes()
	notifier := commandsmock.NewMockEventNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	uc := commands.NewReservationCommands(store, gateway, scorer, notifier, &seqTxIDs{}, newClock(),
		config.ReservationConfig{Timeout: 10 * time.Second}, discardLogger())

	const workers = 24
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// every range contains the night of March 10
			in := date(3, 10-i%3)
			out := date(3, 11+i%4)
			req := builder.NewBookingBuilder().WithRoom(room, in, out, 10000).BuildReserveRequest()
			_, err := uc.Reserve(context.Background(), req)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrRoomUnavailable):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	require.Equal(t, 1, store.BookingCount())
	assert.Equal(t, 1, store.HeldNights(room, date(3, 10)))
}
