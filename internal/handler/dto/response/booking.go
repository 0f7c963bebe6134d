package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type ReserveResponse struct {
	PaymentURL    string `json:"payment_url"`
	TransactionID string `json:"transactionId"`
}

func FromReserveResult(r *commands.ReserveResult) ReserveResponse {
	return ReserveResponse{PaymentURL: r.PaymentURL, TransactionID: r.TransactionID}
}

type BookingRoomResponse struct {
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Price        string `json:"price"`
}

type BookingPaymentResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        string `json:"amount"`
}

type BookingResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"userId"`
	Rooms             []BookingRoomResponse   `json:"rooms"`
	TotalAmount       string                  `json:"totalAmount"`
	Name              string                  `json:"name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Address           string                  `json:"address"`
	City              string                  `json:"city"`
	TransactionID     string                  `json:"transactionId"`
	CancelProbability float64                 `json:"cancelProbability"`
	Status            string                  `json:"status"`
	Payment           *BookingPaymentResponse `json:"payment,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	rooms := make([]BookingRoomResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		rooms[i] = BookingRoomResponse{
			RoomID:       r.RoomID.String(),
			CheckInDate:  r.CheckIn.Format(time.DateOnly),
			CheckOutDate: r.CheckOut.Format(time.DateOnly),
			Price:        booking.NewMoney(r.PriceCents).String(),
		}
	}

	resp := &BookingResponse{
		ID:                v.ID.String(),
		UserID:            v.UserID.String(),
		Rooms:             rooms,
		TotalAmount:       booking.NewMoney(v.TotalAmountCents).String(),
		Name:              v.ContactName,
		Email:             v.ContactEmail,
		Phone:             v.ContactPhone,
		Address:           v.ContactAddress,
		City:              v.ContactCity,
		TransactionID:     v.TransactionID,
		CancelProbability: v.CancelProbability,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
	if v.Payment != nil {
		resp.Payment = &BookingPaymentResponse{
			ID:            v.Payment.ID.String(),
			Status:        v.Payment.Status,
			PaymentMethod: v.Payment.Method,
			Amount:        booking.NewMoney(v.Payment.AmountCents).String(),
		}
	}
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// BookingStatusResponse describes a booking right after a state change
type BookingStatusResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"totalAmount"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) BookingStatusResponse {
	return BookingStatusResponse{
		ID:            b.ID().String(),
		TransactionID: b.TransactionID(),
		Status:        b.Status().String(),
		TotalAmount:   b.Total().String(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

type PaymentStatusResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Amount        string    `json:"amount"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromPayment(p *payment.Payment) PaymentStatusResponse {
	return PaymentStatusResponse{
		ID:            p.ID().String(),
		TransactionID: p.TransactionID(),
		Status:        p.Status().String(),
		PaymentMethod: p.Method(),
		Amount:        p.Amount().String(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

type CancelResponse struct {
	Booking BookingStatusResponse `json:"booking"`
	Payment PaymentStatusResponse `json:"payment"`
}

func FromCancelResult(r *commands.CancelResult) CancelResponse {
	return CancelResponse{Booking: FromBooking(r.Booking), Payment: FromPayment(r.Payment)}
}

type BookedDatesResponse struct {
	RoomID string   `json:"roomId"`
	Dates  []string `json:"bookedDates"`
}

func FromBookedDates(roomID string, nights []time.Time) BookedDatesResponse {
	dates := make([]string, len(nights))
	for i, n := range nights {
		dates[i] = n.Format(time.DateOnly)
	}
	return BookedDatesResponse{RoomID: roomID, Dates: dates}
}
