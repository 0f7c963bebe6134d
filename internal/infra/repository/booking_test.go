//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/tests/common/builder"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// LockRooms Tests
// =============================================================================

func TestBookingRepository_LockRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("locks distinct rooms in ascending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

		gomock.InOrder(
			mockQueries.EXPECT().LockRoomForBooking(ctx, mockDB, low.String()).Return(nil),
			mockQueries.EXPECT().LockRoomForBooking(ctx, mockDB, high.String()).Return(nil),
		)

		require.NoError(t, repo.LockRooms(ctx, mockDB, []uuid.UUID{high, low, high}))
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockRoomForBooking(ctx, mockDB, gomock.Any()).Return(errors.New("connection reset"))

		err := repo.LockRooms(ctx, mockDB, []uuid.UUID{uuid.New()})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking and every room line inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
						assert.Equal(t, b.TransactionID(), arg.TransactionID)
						assert.Equal(t, int64(35000), arg.TotalAmountCents)
						assert.Equal(t, "pending", arg.Status)
						return arg.ID, nil
					})
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingRoomParams) error {
						assert.True(t, arg.HoldsInventory)
						return nil
					}).Times(2)
			},
		},
		{
			name: "error: transaction id already taken",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: room does not exist",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(b.ID(), nil)
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"booking_rooms\" violates foreign key constraint"}
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: overlapping stay rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(b.ID(), nil)
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(excl)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			checkIn := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
			domainBooking, err := builder.NewBookingBuilder().
				WithRoom(uuid.New(), checkIn, checkIn.AddDate(0, 0, 2), 10000).
				AddRoom(uuid.New(), checkIn, checkIn.AddDate(0, 0, 3), 5000).
				BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainBooking, mockDB)

			actualError := repo.Create(ctx, mockDB, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Find Booking Tests
// =============================================================================

func TestBookingRepository_FindByTransactionIDForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().AsBooked()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking hydrated with its rooms",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByTransactionIDForUpdate(ctx, tx, b.TransactionID).Return(b.BuildInfra(), nil)
				mock.EXPECT().ListBookingRooms(ctx, tx, b.ID).Return(b.BuildInfraRooms(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByTransactionIDForUpdate(ctx, tx, b.TransactionID).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: listing rooms fails",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingByTransactionIDForUpdate(ctx, tx, b.TransactionID).Return(b.BuildInfra(), nil)
				mock.EXPECT().ListBookingRooms(ctx, tx, b.ID).Return(nil, errors.New("timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				row := b.BuildInfra()
				row.Status = "archived"
				mock.EXPECT().GetBookingByTransactionIDForUpdate(ctx, tx, b.TransactionID).Return(row, nil)
				mock.EXPECT().ListBookingRooms(ctx, tx, b.ID).Return(b.BuildInfraRooms(), nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actual, err := repo.FindByTransactionIDForUpdate(ctx, mockDB, b.TransactionID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, actual.ID())
			assert.Equal(t, booking.StatusBooked, actual.Status())
			assert.Equal(t, b.UserID, actual.UserID())
			assert.Len(t, actual.Items(), len(b.Lines))
			assert.Equal(t, b.Lines[0].CheckIn, actual.Items()[0].Stay().CheckIn())
		})
	}
}

func TestBookingRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, mockDB, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

	_, err := repo.FindByIDForUpdate(ctx, mockDB, id)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		status        booking.Status
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:   "success: booked keeps holding inventory",
			status: booking.StatusBooked,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
					ID:        b.ID(),
					Status:    "booked",
					UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
				}).Return(int64(1), nil)
				mock.EXPECT().SetBookingRoomsHoldInventory(ctx, tx, sqlc.SetBookingRoomsHoldInventoryParams{
					BookingID:      b.ID(),
					HoldsInventory: true,
				}).Return(nil)
			},
		},
		{
			name:   "success: cancelled releases the rooms",
			status: booking.StatusCancelled,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(1), nil)
				mock.EXPECT().SetBookingRoomsHoldInventory(ctx, tx, sqlc.SetBookingRoomsHoldInventoryParams{
					BookingID:      b.ID(),
					HoldsInventory: false,
				}).Return(nil)
			},
		},
		{
			name:   "error: booking not found",
			status: booking.StatusFailed,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:   "error: database error occurs",
			status: booking.StatusFailed,
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().WithStatus(tc.status).BuildReconstructed()
			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.UpdateStatus(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
