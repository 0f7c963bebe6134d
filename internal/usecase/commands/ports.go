package commands

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
)

// Ports to systems outside the booking core. Implementations live under internal/infra.

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
}

type InitiateRequest struct {
	Amount        booking.Money
	TransactionID string
	Customer      Customer
	Description   string
}

type InitiateResult struct {
	PaymentURL string
}

// GatewayStatus is the authoritative settlement state reported by the gateway
type GatewayStatus string

const (
	GatewayPaid    GatewayStatus = "paid"
	GatewayNotPaid GatewayStatus = "not_paid"
	GatewayPending GatewayStatus = "pending"
)

type VerifyResult struct {
	Status      GatewayStatus
	Amount      booking.Money
	PaymentType string
	Title       string
}

type PaymentGateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (InitiateResult, error)
	Verify(ctx context.Context, transactionID string) (VerifyResult, error)
}

type RiskFeatures struct {
	UserTotalBookings int64   `json:"user_total_bookings"`
	UserCancelRate    float64 `json:"user_cancel_rate"`
	Price             float64 `json:"price"`
	DurationDays      int     `json:"duration_days"`
	DaysBeforeCheckIn int     `json:"days_before_checkin"`
	PaymentCompleted  int     `json:"payment_completed"`
}

// RiskScorer returns a cancellation probability in [0,1], or 0 when scoring is unavailable.
type RiskScorer interface {
	Predict(ctx context.Context, features RiskFeatures) float64
}

const (
	TopicBookingCreated   = "booking.created"
	TopicPaymentSettled   = "payment.settled"
	TopicBookingCancelled = "booking.cancelled"
)

type Event struct {
	Topic   string
	Roles   []string
	Payload any
}

// EventNotifier delivers events on a best-effort basis. Publish never blocks the caller on delivery.
type EventNotifier interface {
	Publish(ctx context.Context, event Event)
}

type BookingEventPayload struct {
	BookingID     string `json:"booking_id"`
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	TotalAmount   string `json:"total_amount"`
}

type PaymentEventPayload struct {
	PaymentID     string `json:"payment_id"`
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
}

func bookingEvent(topic string, b *booking.Booking) Event {
	return Event{
		Topic: topic,
		Roles: staffAudience(),
		Payload: BookingEventPayload{
			BookingID:     b.ID().String(),
			UserID:        b.UserID().String(),
			TransactionID: b.TransactionID(),
			Status:        b.Status().String(),
			TotalAmount:   b.Total().String(),
		},
	}
}

func staffAudience() []string {
	roles := user.StaffRoles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return names
}
