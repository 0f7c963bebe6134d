package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingRoomsByBookingIDs(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]sqlc.BookingRooms, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Bookings, error)
	FilterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FilterBookingsParams) ([]sqlc.Bookings, error)
	CountFilteredBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountFilteredBookingsParams) (int64, error)
	ListBookedRangesByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedRangesByRoomParams) ([]sqlc.ListBookedRangesByRoomRow, error)
	GetUserBookingStats(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetUserBookingStatsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	view := &queries.BookingView{
		ID:                row.ID,
		UserID:            row.UserID,
		TotalAmountCents:  row.TotalAmountCents,
		ContactName:       row.ContactName,
		ContactEmail:      row.ContactEmail,
		ContactPhone:      row.ContactPhone,
		ContactAddress:    row.ContactAddress,
		ContactCity:       row.ContactCity,
		TransactionID:     row.TransactionID,
		CancelProbability: row.CancelProbability,
		Status:            row.Status,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.PaymentID.Valid {
		view.Payment = &queries.BookingPaymentView{
			ID:          uuid.UUID(row.PaymentID.Bytes),
			Status:      row.PaymentStatus.String,
			Method:      row.PaymentMethod.String,
			AmountCents: row.PaymentAmountCents.Int64,
		}
	}

	if err := r.attachRooms(ctx, []*queries.BookingView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	views := mapBookingRows(rows)
	if err := r.attachRooms(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) Filter(ctx context.Context, status, search *string, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.FilterBookings(ctx, r.db, sqlc.FilterBookingsParams{
		Status:     pgconv.StringPtrToPgtype(status),
		Search:     pgconv.StringPtrToPgtype(search),
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter bookings", err)
	}
	views := mapBookingRows(rows)
	if err := r.attachRooms(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) CountFiltered(ctx context.Context, status, search *string) (int64, error) {
	total, err := r.queries.CountFilteredBookings(ctx, r.db, sqlc.CountFilteredBookingsParams{
		Status: pgconv.StringPtrToPgtype(status),
		Search: pgconv.StringPtrToPgtype(search),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return total, nil
}

func (r *BookingReadStore) FindBookedRanges(ctx context.Context, roomID uuid.UUID, from time.Time) ([]availability.Occupancy, error) {
	rows, err := r.queries.ListBookedRangesByRoom(ctx, r.db, sqlc.ListBookedRangesByRoomParams{
		RoomID:   roomID,
		FromDate: pgconv.DateToPgtype(from),
		Statuses: inventoryStatusNames(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}

	occupancies := make([]availability.Occupancy, 0, len(rows))
	for _, row := range rows {
		occ, err := toOccupancy(row.BookingID, row.RoomID, row.CheckIn, row.CheckOut, row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booked range", err)
		}
		occupancies = append(occupancies, occ)
	}
	return occupancies, nil
}

func (r *BookingReadStore) UserBookingStats(ctx context.Context, userID uuid.UUID) (total, cancelled int64, err error) {
	row, err := r.queries.GetUserBookingStats(ctx, r.db, userID)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to get user booking stats", err)
	}
	return row.TotalBookings, row.CancelledBookings, nil
}

func (r *BookingReadStore) attachRooms(ctx context.Context, views []*queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(views))
	byID := make(map[uuid.UUID]*queries.BookingView, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
		byID[v.ID] = v
		v.Rooms = []queries.BookingRoomView{}
	}

	rooms, err := r.queries.ListBookingRoomsByBookingIDs(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking rooms", err)
	}
	for _, room := range rooms {
		v, ok := byID[room.BookingID]
		if !ok {
			continue
		}
		v.Rooms = append(v.Rooms, queries.BookingRoomView{
			RoomID:     room.RoomID,
			CheckIn:    pgconv.DateFromPgtype(room.CheckIn),
			CheckOut:   pgconv.DateFromPgtype(room.CheckOut),
			PriceCents: room.PriceCents,
		})
	}
	return nil
}

func mapBookingRows(rows []sqlc.Bookings) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:                row.ID,
			UserID:            row.UserID,
			TotalAmountCents:  row.TotalAmountCents,
			ContactName:       row.ContactName,
			ContactEmail:      row.ContactEmail,
			ContactPhone:      row.ContactPhone,
			ContactAddress:    row.ContactAddress,
			ContactCity:       row.ContactCity,
			TransactionID:     row.TransactionID,
			CancelProbability: row.CancelProbability,
			Status:            row.Status,
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views
}

func toOccupancy(bookingID, roomID uuid.UUID, checkIn, checkOut pgtype.Date, status string) (availability.Occupancy, error) {
	stay, err := booking.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return availability.Occupancy{}, err
	}
	st, err := booking.ParseStatus(status)
	if err != nil {
		return availability.Occupancy{}, err
	}
	return availability.Occupancy{BookingID: bookingID, RoomID: roomID, Stay: stay, Status: st}, nil
}

func inventoryStatusNames() []string {
	statuses := booking.InventoryStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
