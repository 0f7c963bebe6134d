package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: Single attempt transaction for work with external side effects.
	// Serialization failures are returned to the caller instead of re-running fn.
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for decisions outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserBookingStats(ctx context.Context, userID uuid.UUID) (*UserBookingStats, error)
}

type BookingRepository interface {
	// LockRooms serializes reservations per room until the transaction ends.
	// Locks are taken in ascending room id order.
	LockRooms(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID) error
	ListOccupancies(ctx context.Context, tx sqlc.DBTX, roomIDs []uuid.UUID, from, to time.Time) ([]availability.Occupancy, error)
	// Create returns a KindDuplicateKey error when the transaction id is taken.
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByTransactionIDForUpdate(ctx context.Context, tx sqlc.DBTX, transactionID string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	FindByTransactionIDForUpdate(ctx context.Context, tx sqlc.DBTX, transactionID string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}
