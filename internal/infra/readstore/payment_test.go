//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/tests/common/builder"
	readstoremock "hotel-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("filter passes status and search and maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPaymentViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPaymentReadStore(mockQueries, mockDB)

		row := builder.NewBookingBuilder().BuildPaymentInfra(payment.StatusCompleted)
		status, search := "completed", "rahim"
		mockQueries.EXPECT().FilterPayments(ctx, mockDB, sqlc.FilterPaymentsParams{
			Status:     pgtype.Text{String: "completed", Valid: true},
			Search:     pgtype.Text{String: "rahim", Valid: true},
			PageLimit:  10,
			PageOffset: 20,
		}).Return([]sqlc.Payments{row}, nil)

		views, err := store.Filter(ctx, &status, &search, 10, 20)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, row.ID, views[0].ID)
		assert.Equal(t, "completed", views[0].Status)
		assert.Equal(t, row.TransactionID, views[0].TransactionID)
	})

	t.Run("filter without criteria sends nulls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPaymentViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPaymentReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().FilterPayments(ctx, mockDB, sqlc.FilterPaymentsParams{PageLimit: 10}).Return(nil, nil)

		views, err := store.Filter(ctx, nil, nil, 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("count filtered passes criteria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPaymentViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPaymentReadStore(mockQueries, mockDB)

		status := "failed"
		mockQueries.EXPECT().CountFilteredPayments(ctx, mockDB, sqlc.CountFilteredPaymentsParams{
			Status: pgtype.Text{String: "failed", Valid: true},
		}).Return(int64(4), nil)

		total, err := store.CountFiltered(ctx, &status, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPaymentViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPaymentReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().CountFilteredPayments(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("boom"))

		_, err := store.CountFiltered(ctx, nil, nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("by user returns empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPaymentViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewPaymentReadStore(mockQueries, mockDB)

		b := builder.NewBookingBuilder()
		mockQueries.EXPECT().ListPaymentsByUser(ctx, mockDB, b.UserID).Return(nil, nil)

		views, err := store.FindByUser(ctx, b.UserID)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
