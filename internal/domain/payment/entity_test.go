//go:build unit

package payment_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("mirrors the booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		p, err := payment.NewPayment(b, "", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, b.ID(), p.BookingID())
		assert.Equal(t, b.UserID(), p.UserID())
		assert.Equal(t, b.Total(), p.Amount())
		assert.Equal(t, b.TransactionID(), p.TransactionID())
		assert.Equal(t, payment.DefaultMethod, p.Method())
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("missing transaction id", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithTransactionID("").BuildReconstructed()
		_, err := payment.NewPayment(b, payment.DefaultMethod, now)
		assert.True(t, errs.Is(err, payment.ErrMissingTransactionID))
	})
}

func TestPayment_Transitions(t *testing.T) {
	now := time.Date(2030, 2, 1, 12, 0, 0, 0, time.UTC)

	apply := map[string]func(*payment.Payment) error{
		"complete":     func(p *payment.Payment) error { return p.Complete("bKash", now) },
		"fail":         func(p *payment.Payment) error { return p.Fail(now) },
		"cancel":       func(p *payment.Payment) error { return p.Cancel(now) },
		"claim refund": func(p *payment.Payment) error { return p.ClaimRefund(now) },
		"refunded":     func(p *payment.Payment) error { return p.MarkRefunded(now) },
	}

	tests := []struct {
		from   payment.Status
		action string
		want   payment.Status
		ok     bool
	}{
		{payment.StatusPending, "complete", payment.StatusCompleted, true},
		{payment.StatusPending, "fail", payment.StatusFailed, true},
		{payment.StatusPending, "cancel", payment.StatusCancelled, true},
		{payment.StatusPending, "claim refund", payment.StatusClaimRefund, true},
		{payment.StatusPending, "refunded", "", false},
		{payment.StatusCompleted, "claim refund", payment.StatusClaimRefund, true},
		{payment.StatusCompleted, "complete", "", false},
		{payment.StatusCompleted, "fail", "", false},
		{payment.StatusCompleted, "cancel", "", false},
		{payment.StatusClaimRefund, "refunded", payment.StatusRefunded, true},
		{payment.StatusClaimRefund, "claim refund", "", false},
		{payment.StatusFailed, "complete", "", false},
		{payment.StatusFailed, "claim refund", "", false},
		{payment.StatusCancelled, "complete", "", false},
		{payment.StatusRefunded, "claim refund", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" "+tt.action, func(t *testing.T) {
			p := builder.NewBookingBuilder().BuildPayment(tt.from)

			err := apply[tt.action](p)

			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.Status())
				assert.Equal(t, now, p.UpdatedAt())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, payment.ErrInvalidStateTransition), "got %v", err)
			assert.False(t, errs.Is(err, booking.ErrInvalidStateTransition), "payment and booking sentinels must stay distinct")
			assert.Equal(t, tt.from, p.Status())
		})
	}
}

func TestPayment_CompleteMethod(t *testing.T) {
	now := time.Now()

	p := builder.NewBookingBuilder().BuildPayment(payment.StatusPending)
	require.NoError(t, p.Complete("  bKash ", now))
	assert.Equal(t, "bKash", p.Method())

	q := builder.NewBookingBuilder().BuildPayment(payment.StatusPending)
	require.NoError(t, q.Complete("", now))
	assert.Equal(t, payment.DefaultMethod, q.Method(), "an empty gateway method keeps the current one")
}

func TestParseStatus(t *testing.T) {
	st, err := payment.ParseStatus("claim_refund")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusClaimRefund, st)

	_, err = payment.ParseStatus("paid")
	assert.True(t, errs.Is(err, payment.ErrInvalidStatus))

	assert.True(t, payment.StatusRefunded.IsTerminal())
	assert.False(t, payment.StatusClaimRefund.IsTerminal())
}
