package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"
)

type PaymentResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	BookingID     string    `json:"bookingId"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(views))
	for i, v := range views {
		res[i] = &PaymentResponse{
			ID:            v.ID.String(),
			UserID:        v.UserID.String(),
			BookingID:     v.BookingID.String(),
			Amount:        booking.NewMoney(v.AmountCents).String(),
			PaymentMethod: v.PaymentMethod,
			Status:        v.Status,
			TransactionID: v.TransactionID,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return res
}
