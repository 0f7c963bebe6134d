package converter

import (
	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	contact := b.Contact()
	return sqlc.CreateBookingParams{
		ID:                b.ID(),
		UserID:            b.UserID(),
		TotalAmountCents:  b.Total().Minor(),
		ContactName:       contact.Name(),
		ContactEmail:      contact.Email(),
		ContactPhone:      contact.Phone(),
		ContactAddress:    contact.Address(),
		ContactCity:       contact.City(),
		TransactionID:     b.TransactionID(),
		CancelProbability: b.CancelProbability(),
		Status:            b.Status().String(),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func LineItemsToCreateParams(b *booking.Booking) []sqlc.CreateBookingRoomParams {
	items := b.Items()
	holds := b.Status().HoldsInventory()
	params := make([]sqlc.CreateBookingRoomParams, 0, len(items))
	for i, item := range items {
		lineNo := int32(i + 1) // #nosec G115 -- line count is bounded by request validation
		params = append(params, sqlc.CreateBookingRoomParams{
			BookingID:      b.ID(),
			LineNo:         lineNo,
			RoomID:         item.RoomID(),
			CheckIn:        pgconv.DateToPgtype(item.Stay().CheckIn()),
			CheckOut:       pgconv.DateToPgtype(item.Stay().CheckOut()),
			PriceCents:     item.Price().Minor(),
			HoldsInventory: holds,
		})
	}
	return params
}

func BookingFromRows(row sqlc.Bookings, rooms []sqlc.BookingRooms) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewContactInfo(row.ContactName, row.ContactEmail, row.ContactPhone, row.ContactAddress, row.ContactCity)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has invalid contact", row.ID)
	}

	items, err := LineItemsFromRows(rooms)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		items,
		booking.NewMoney(row.TotalAmountCents),
		contact,
		row.TransactionID,
		row.CancelProbability,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func LineItemsFromRows(rooms []sqlc.BookingRooms) ([]booking.LineItem, error) {
	items := make([]booking.LineItem, 0, len(rooms))
	for _, r := range rooms {
		stay, err := booking.NewStayRange(pgconv.DateFromPgtype(r.CheckIn), pgconv.DateFromPgtype(r.CheckOut))
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s line %d", r.BookingID, r.LineNo)
		}
		item, err := booking.NewLineItem(r.RoomID, stay, booking.NewMoney(r.PriceCents))
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s line %d", r.BookingID, r.LineNo)
		}
		items = append(items, item)
	}
	return items, nil
}

func OccupancyFromRow(row sqlc.ListRoomOccupanciesRow) (availability.Occupancy, error) {
	stay, err := booking.NewStayRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return availability.Occupancy{}, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return availability.Occupancy{}, err
	}
	return availability.Occupancy{
		BookingID: row.BookingID,
		RoomID:    row.RoomID,
		Stay:      stay,
		Status:    status,
	}, nil
}

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		UserID:        p.UserID(),
		BookingID:     p.BookingID(),
		AmountCents:   p.Amount().Minor(),
		PaymentMethod: p.Method(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(
		row.ID,
		row.UserID,
		row.BookingID,
		booking.NewMoney(row.AmountCents),
		row.PaymentMethod,
		status,
		row.TransactionID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
