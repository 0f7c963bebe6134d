//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// RoomLine is one requested room in a builder.
type RoomLine struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Price    booking.Money
}

type BookingBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Lines             []RoomLine
	Name              string
	Email             string
	Phone             string
	Address           string
	City              string
	TransactionID     string
	CancelProbability float64
	Status            booking.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Lines: []RoomLine{{
			RoomID:   uuid.New(),
			CheckIn:  time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2030, 3, 3, 0, 0, 0, 0, time.UTC),
			Price:    booking.NewMoney(10000),
		}},
		Name:          "Rahim Uddin",
		Email:         "rahim@example.com",
		Phone:         "+8801700000000",
		Address:       "House 12, Road 3",
		City:          "Dhaka",
		TransactionID: "TXN1893456000000123",
		Status:        booking.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildLineItems() ([]booking.LineItem, error) {
	items := make([]booking.LineItem, 0, len(b.Lines))
	for _, line := range b.Lines {
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

func (b *BookingBuilder) BuildContact() (booking.ContactInfo, error) {
	return booking.NewContactInfo(b.Name, b.Email, b.Phone, b.Address, b.City)
}

// BuildDomain creates a pending booking through the domain constructor.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	items, err := b.BuildLineItems()
	if err != nil {
		return nil, err
	}
	contact, err := b.BuildContact()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.UserID, items, contact, b.TransactionID, b.CancelProbability, b.CreatedAt)
}

// BuildReconstructed keeps the builder's id and status; inputs are assumed valid.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	items, err := b.BuildLineItems()
	if err != nil {
		panic(err)
	}
	contact, err := b.BuildContact()
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(b.ID, b.UserID, items, b.total(items), contact,
		b.TransactionID, b.CancelProbability, b.Status, b.CreatedAt, b.UpdatedAt)
}

// total panics on overflow; builder prices are assumed valid.
func (b *BookingBuilder) total(items []booking.LineItem) booking.Money {
	total, err := booking.CalculateTotal(items)
	if err != nil {
		panic(err)
	}
	return total
}

// BuildPayment pairs a payment with the reconstructed booking.
func (b *BookingBuilder) BuildPayment(status payment.Status) *payment.Payment {
	bk := b.BuildReconstructed()
	return payment.ReconstructPayment(uuid.New(), b.UserID, b.ID, bk.Total(), payment.DefaultMethod,
		status, b.TransactionID, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	items, _ := b.BuildLineItems()
	return sqlc.Bookings{
		ID:                b.ID,
		UserID:            b.UserID,
		TotalAmountCents:  b.total(items).Minor(),
		ContactName:       b.Name,
		ContactEmail:      b.Email,
		ContactPhone:      b.Phone,
		ContactAddress:    b.Address,
		ContactCity:       b.City,
		TransactionID:     b.TransactionID,
		CancelProbability: b.CancelProbability,
		Status:            b.Status.String(),
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildInfraRooms() []sqlc.BookingRooms {
	rows := make([]sqlc.BookingRooms, 0, len(b.Lines))
	for i, line := range b.Lines {
		rows = append(rows, sqlc.BookingRooms{
			BookingID:      b.ID,
			LineNo:         int32(i + 1), // #nosec G115 -- test data
			RoomID:         line.RoomID,
			CheckIn:        pgconv.DateToPgtype(line.CheckIn),
			CheckOut:       pgconv.DateToPgtype(line.CheckOut),
			PriceCents:     line.Price.Minor(),
			HoldsInventory: b.Status.HoldsInventory(),
		})
	}
	return rows
}

func (b *BookingBuilder) BuildPaymentInfra(status payment.Status) sqlc.Payments {
	items, _ := b.BuildLineItems()
	return sqlc.Payments{
		ID:            uuid.New(),
		UserID:        b.UserID,
		BookingID:     b.ID,
		AmountCents:   b.total(items).Minor(),
		PaymentMethod: payment.DefaultMethod,
		Status:        status.String(),
		TransactionID: b.TransactionID,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildReserveRequest() commands.ReserveRequest {
	lines := make([]commands.ReserveLine, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, commands.ReserveLine{
			RoomID:   line.RoomID,
			CheckIn:  line.CheckIn,
			CheckOut: line.CheckOut,
			Price:    line.Price,
		})
	}
	return commands.ReserveRequest{
		UserID: b.UserID,
		Lines:  lines,
		Contact: commands.Customer{
			Name:    b.Name,
			Email:   b.Email,
			Phone:   b.Phone,
			Address: b.Address,
			City:    b.City,
		},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	rooms := make([]reqdto.BookingRoomRequest, 0, len(b.Lines))
	for _, line := range b.Lines {
		rooms = append(rooms, reqdto.BookingRoomRequest{
			RoomID:       line.RoomID,
			CheckInDate:  line.CheckIn.Format(time.DateOnly),
			CheckOutDate: line.CheckOut.Format(time.DateOnly),
			Price:        line.Price.Major(),
		})
	}
	return reqdto.CreateBookingRequest{
		Rooms:   rooms,
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Address: b.Address,
		City:    b.City,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	items, _ := b.BuildLineItems()
	rooms := make([]queries.BookingRoomView, 0, len(b.Lines))
	for _, line := range b.Lines {
		rooms = append(rooms, queries.BookingRoomView{
			RoomID:     line.RoomID,
			CheckIn:    line.CheckIn,
			CheckOut:   line.CheckOut,
			PriceCents: line.Price.Minor(),
		})
	}
	return &queries.BookingView{
		ID:                b.ID,
		UserID:            b.UserID,
		TotalAmountCents:  b.total(items).Minor(),
		ContactName:       b.Name,
		ContactEmail:      b.Email,
		ContactPhone:      b.Phone,
		ContactAddress:    b.Address,
		ContactCity:       b.City,
		TransactionID:     b.TransactionID,
		CancelProbability: b.CancelProbability,
		Status:            b.Status.String(),
		Rooms:             rooms,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildPaymentView(status payment.Status) *queries.PaymentView {
	items, _ := b.BuildLineItems()
	return &queries.PaymentView{
		ID:            uuid.New(),
		UserID:        b.UserID,
		BookingID:     b.ID,
		AmountCents:   b.total(items).Minor(),
		PaymentMethod: payment.DefaultMethod,
		Status:        status.String(),
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTransactionID(txID string) *BookingBuilder {
	b.TransactionID = txID
	return b
}

func (b *BookingBuilder) WithRoom(roomID uuid.UUID, checkIn, checkOut time.Time, priceMinor int64) *BookingBuilder {
	b.Lines = []RoomLine{{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut, Price: booking.NewMoney(priceMinor)}}
	return b
}

func (b *BookingBuilder) AddRoom(roomID uuid.UUID, checkIn, checkOut time.Time, priceMinor int64) *BookingBuilder {
	b.Lines = append(b.Lines, RoomLine{RoomID: roomID, CheckIn: checkIn, CheckOut: checkOut, Price: booking.NewMoney(priceMinor)})
	return b
}

func (b *BookingBuilder) AsBooked() *BookingBuilder {
	b.Status = booking.StatusBooked
	return b
}

func (b *BookingBuilder) AsCancelRequested() *BookingBuilder {
	b.Status = booking.StatusInitiateCancel
	return b
}
