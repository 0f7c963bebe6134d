//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func day(month time.Month, d int) time.Time {
	return time.Date(2030, month, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	view := builder.NewBookingBuilder().WithUserID(owner).BuildViewQuery()

	tests := []struct {
		name        string
		actorID     uuid.UUID
		role        user.Role
		findErr     error
		expectedErr error
	}{
		{name: "owner sees own booking", actorID: owner, role: user.RoleGuest},
		{name: "receptionist sees any booking", actorID: uuid.New(), role: user.RoleReceptionist},
		{name: "admin sees any booking", actorID: uuid.New(), role: user.RoleAdmin},
		{name: "other guest is refused", actorID: uuid.New(), role: user.RoleGuest, expectedErr: queries.ErrBookingAccess},
		{
			name:        "missing booking",
			actorID:     owner,
			role:        user.RoleGuest,
			findErr:     infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound),
			expectedErr: queries.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			if tt.findErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tt.findErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(store, clock.NewMockClock(day(1, 10))).
				GetByID(context.Background(), view.ID, tt.actorID, tt.role)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.expectedErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Same(t, view, got)
		})
	}

	t.Run("storage failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		dbErr := infra.WrapRepoErr("failed to get booking", errors.New("timeout"))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := queries.NewBookingQueries(store, clock.NewMockClock(day(1, 10))).
			GetByID(context.Background(), uuid.New(), owner, user.RoleAdmin)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, errs.Is(err, queries.ErrBookingNotFound))
	})
}

func TestBookingQueries_List(t *testing.T) {
	tests := []struct {
		name         string
		filter       queries.BookingFilter
		total        int64
		expectLimit  int32
		expectOffset int32
		expectStatus *string
		expectSearch *string
		expectMeta   queries.PageMeta
	}{
		{
			name:        "defaults",
			total:       3,
			expectLimit: 10,
			expectMeta:  queries.PageMeta{Page: 1, Limit: 10, Total: 3},
		},
		{
			name:         "third page of five",
			filter:       queries.BookingFilter{PageRequest: queries.PageRequest{Page: ptr(3), Limit: ptr(5)}},
			total:        40,
			expectLimit:  5,
			expectOffset: 10,
			expectMeta:   queries.PageMeta{Page: 3, Limit: 5, Total: 40},
		},
		{
			name:        "limit is capped and bad page reset",
			filter:      queries.BookingFilter{PageRequest: queries.PageRequest{Page: ptr(-2), Limit: ptr(1000)}},
			total:       1,
			expectLimit: queries.MaxListLimit,
			expectMeta:  queries.PageMeta{Page: 1, Limit: queries.MaxListLimit, Total: 1},
		},
		{
			name:         "filters are trimmed",
			filter:       queries.BookingFilter{Status: ptr(" booked "), Search: ptr("  rahim")},
			total:        1,
			expectLimit:  10,
			expectStatus: ptr("booked"),
			expectSearch: ptr("rahim"),
			expectMeta:   queries.PageMeta{Page: 1, Limit: 10, Total: 1},
		},
		{
			name:        "status all is no filter",
			filter:      queries.BookingFilter{Status: ptr("All")},
			total:       1,
			expectLimit: 10,
			expectMeta:  queries.PageMeta{Page: 1, Limit: 10, Total: 1},
		},
		{
			name:        "blank filters are dropped",
			filter:      queries.BookingFilter{Status: ptr("  "), Search: ptr("")},
			total:       1,
			expectLimit: 10,
			expectMeta:  queries.PageMeta{Page: 1, Limit: 10, Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			rows := []*queries.BookingView{builder.NewBookingBuilder().BuildViewQuery()}

			store.EXPECT().CountFiltered(gomock.Any(), tt.expectStatus, tt.expectSearch).Return(tt.total, nil)
			store.EXPECT().Filter(gomock.Any(), tt.expectStatus, tt.expectSearch, tt.expectLimit, tt.expectOffset).Return(rows, nil)

			got, meta, err := queries.NewBookingQueries(store, clock.NewMockClock(day(1, 10))).List(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, rows, got)
			assert.Equal(t, tt.expectMeta, meta)
		})
	}

	t.Run("empty count skips the page query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().CountFiltered(gomock.Any(), nil, nil).Return(int64(0), nil)

		got, meta, err := queries.NewBookingQueries(store, clock.NewMockClock(day(1, 10))).List(context.Background(), queries.BookingFilter{})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, int64(0), meta.Total)
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().CountFiltered(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		_, _, err := queries.NewBookingQueries(store, clock.NewMockClock(day(1, 10))).List(context.Background(), queries.BookingFilter{})
		assert.Error(t, err)
	})
}

func TestBookingQueries_BookedDates(t *testing.T) {
	roomID := uuid.New()
	stay := func(in, out time.Time) booking.StayRange {
		s, err := booking.NewStayRange(in, out)
		require.NoError(t, err)
		return s
	}

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	now := time.Date(2030, 3, 2, 15, 30, 0, 0, time.UTC)

	store.EXPECT().FindBookedRanges(gomock.Any(), roomID, day(3, 2)).Return([]availability.Occupancy{
		{RoomID: roomID, Stay: stay(day(3, 1), day(3, 4)), Status: booking.StatusBooked},
		{RoomID: roomID, Stay: stay(day(3, 6), day(3, 7)), Status: booking.StatusPending},
		{RoomID: roomID, Stay: stay(day(3, 3), day(3, 5)), Status: booking.StatusInitiateCancel},
	}, nil)

	got, err := queries.NewBookingQueries(store, clock.NewMockClock(now)).BookedDates(context.Background(), roomID)
	require.NoError(t, err)

	want := []time.Time{day(3, 2), day(3, 3), day(3, 6)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("booked dates mismatch (-want +got):\n%s", diff)
	}
}

func TestPaymentQueries_List(t *testing.T) {
	tests := []struct {
		name         string
		filter       queries.PaymentFilter
		expectStatus *string
		expectSearch *string
		expectLimit  int32
		expectOffset int32
		expectMeta   queries.PageMeta
	}{
		{
			name:         "second page",
			filter:       queries.PaymentFilter{PageRequest: queries.PageRequest{Page: ptr(2), Limit: ptr(20)}},
			expectLimit:  20,
			expectOffset: 20,
			expectMeta:   queries.PageMeta{Page: 2, Limit: 20, Total: 21},
		},
		{
			name:         "status is lowercased and search trimmed",
			filter:       queries.PaymentFilter{Status: ptr(" Failed "), Search: ptr(" TXN-20250301 ")},
			expectStatus: ptr("failed"),
			expectSearch: ptr("TXN-20250301"),
			expectLimit:  10,
			expectMeta:   queries.PageMeta{Page: 1, Limit: 10, Total: 21},
		},
		{
			name:        "all means any status",
			filter:      queries.PaymentFilter{Status: ptr("ALL"), Search: ptr("  ")},
			expectLimit: 10,
			expectMeta:  queries.PageMeta{Page: 1, Limit: 10, Total: 21},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPaymentReadStore(ctrl)
			rows := []*queries.PaymentView{builder.NewBookingBuilder().BuildPaymentView(payment.StatusCompleted)}

			store.EXPECT().CountFiltered(gomock.Any(), tt.expectStatus, tt.expectSearch).Return(int64(21), nil)
			store.EXPECT().Filter(gomock.Any(), tt.expectStatus, tt.expectSearch, tt.expectLimit, tt.expectOffset).Return(rows, nil)

			got, meta, err := queries.NewPaymentQueries(store).List(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, rows, got)
			assert.Equal(t, tt.expectMeta, meta)
		})
	}

	t.Run("empty count skips the page query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		store.EXPECT().CountFiltered(gomock.Any(), ptr("cancelled"), nil).Return(int64(0), nil)

		got, meta, err := queries.NewPaymentQueries(store).List(context.Background(), queries.PaymentFilter{Status: ptr("cancelled")})

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, int64(0), meta.Total)
	})
}

func TestPaymentQueries_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPaymentReadStore(ctrl)
	userID := uuid.New()
	store.EXPECT().FindByUser(gomock.Any(), userID).Return([]*queries.PaymentView{}, nil)

	got, err := queries.NewPaymentQueries(store).ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
