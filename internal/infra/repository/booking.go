package repository

import (
	"bytes"
	"context"
	"slices"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockRoomForBooking(ctx context.Context, db sqlc.DBTX, roomKey string) error
	ListRoomOccupancies(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomOccupanciesParams) ([]sqlc.ListRoomOccupanciesRow, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	CreateBookingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRoomParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByTransactionIDForUpdate(ctx context.Context, db sqlc.DBTX, transactionID string) (sqlc.Bookings, error)
	ListBookingRooms(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingRooms, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	SetBookingRoomsHoldInventory(ctx context.Context, db sqlc.DBTX, arg sqlc.SetBookingRoomsHoldInventoryParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockRooms(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID) error {
	ordered := slices.Clone(roomIDs)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ordered = slices.Compact(ordered)

	for _, id := range ordered {
		if err := r.queries.LockRoomForBooking(ctx, tx, id.String()); err != nil {
			return infra.WrapRepoErr("failed to lock room", err)
		}
	}
	return nil
}

func (r *BookingRepository) ListOccupancies(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID, from, to time.Time) ([]availability.Occupancy, error) {
	statuses := booking.InventoryStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	rows, err := r.queries.ListRoomOccupancies(ctx, tx, sqlc.ListRoomOccupanciesParams{
		RoomIds:     roomIDs,
		WindowEnd:   pgconv.DateToPgtype(to),
		WindowStart: pgconv.DateToPgtype(from),
		Statuses:    names,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room occupancies", err)
	}

	occupancies := make([]availability.Occupancy, 0, len(rows))
	for _, row := range rows {
		occ, err := converter.OccupancyFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert occupancy row", err)
		}
		occupancies = append(occupancies, occ)
	}
	return occupancies, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	_, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row when the transaction id already exists
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("transaction id already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for _, params := range converter.LineItemsToCreateParams(b) {
		if err := r.queries.CreateBookingRoom(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create booking room", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return r.hydrate(ctx, tx, row)
}

func (r *BookingRepository) FindByTransactionIDForUpdate(ctx context.Context, tx sqlc.DBTX, transactionID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByTransactionIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by transaction id", err)
	}
	return r.hydrate(ctx, tx, row)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	err = r.queries.SetBookingRoomsHoldInventory(ctx, tx, sqlc.SetBookingRoomsHoldInventoryParams{
		BookingID:      b.ID(),
		HoldsInventory: b.Status().HoldsInventory(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking room inventory", err)
	}
	return nil
}

func (r *BookingRepository) hydrate(ctx context.Context, tx sqlc.DBTX, row sqlc.Bookings) (*booking.Booking, error) {
	rooms, err := r.queries.ListBookingRooms(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}
	b, err := converter.BookingFromRows(row, rooms)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}
