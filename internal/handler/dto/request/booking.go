package request

import (
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.New("dates must be formatted as YYYY-MM-DD")

type BookingRoomRequest struct {
	RoomID       uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate  string    `json:"checkInDate" binding:"required"`
	CheckOutDate string    `json:"checkOutDate" binding:"required"`
	// Price is the nightly rate in major units (e.g. 100.50)
	Price float64 `json:"price" binding:"max=10000000"`
}

type CreateBookingRequest struct {
	Rooms   []BookingRoomRequest `json:"rooms" binding:"required,min=1,dive"`
	Name    string               `json:"name" binding:"required,max=200"`
	Email   string               `json:"email" binding:"required,email"`
	Phone   string               `json:"phone" binding:"required,max=30"`
	Address string               `json:"address" binding:"max=300"`
	City    string               `json:"city" binding:"max=100"`
}

func (r CreateBookingRequest) ToCommand(userID uuid.UUID) (commands.ReserveRequest, error) {
	lines := make([]commands.ReserveLine, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		checkIn, err := parseDate(room.CheckInDate)
		if err != nil {
			return commands.ReserveRequest{}, err
		}
		checkOut, err := parseDate(room.CheckOutDate)
		if err != nil {
			return commands.ReserveRequest{}, err
		}
		price, err := booking.MoneyFromMajor(room.Price)
		if err != nil {
			return commands.ReserveRequest{}, errs.Mark(err, booking.ErrInvalidPrice)
		}
		lines = append(lines, commands.ReserveLine{
			RoomID:   room.RoomID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Price:    price,
		})
	}

	return commands.ReserveRequest{
		UserID: userID,
		Lines:  lines,
		Contact: commands.Customer{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Address: r.Address,
			City:    r.City,
		},
	}, nil
}

// ListBookingsQuery binds GET /api/bookings
type ListBookingsQuery struct {
	Status     *string `form:"status"`
	SearchTerm *string `form:"searchTerm"`
	Page       *int    `form:"page" binding:"omitempty,min=1"`
	Limit      *int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListBookingsQuery) ToFilter() queries.BookingFilter {
	return queries.BookingFilter{
		Status:      q.Status,
		Search:      q.SearchTerm,
		PageRequest: queries.PageRequest{Page: q.Page, Limit: q.Limit},
	}
}

// ListPaymentsQuery binds GET /api/payments
type ListPaymentsQuery struct {
	Status     *string `form:"status"`
	SearchTerm *string `form:"searchTerm"`
	Page       *int    `form:"page" binding:"omitempty,min=1"`
	Limit      *int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListPaymentsQuery) ToFilter() queries.PaymentFilter {
	return queries.PaymentFilter{
		Status:      q.Status,
		Search:      q.SearchTerm,
		PageRequest: queries.PageRequest{Page: q.Page, Limit: q.Limit},
	}
}

// accepts plain dates and RFC 3339 timestamps; only the calendar date is kept
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q", s)
	}
	return t, nil
}
