package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentViewQueries interface {
	FilterPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.FilterPaymentsParams) ([]sqlc.Payments, error)
	CountFilteredPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.CountFilteredPaymentsParams) (int64, error)
	ListPaymentsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

// Filter matches search against the transaction id and the booking's contact name and email.
func (r *PaymentReadStore) Filter(ctx context.Context, status, search *string, limit, offset int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.FilterPayments(ctx, r.db, sqlc.FilterPaymentsParams{
		Status:     pgconv.StringPtrToPgtype(status),
		Search:     pgconv.StringPtrToPgtype(search),
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter payments", err)
	}
	return mapPaymentRows(rows), nil
}

func (r *PaymentReadStore) CountFiltered(ctx context.Context, status, search *string) (int64, error) {
	total, err := r.queries.CountFilteredPayments(ctx, r.db, sqlc.CountFilteredPaymentsParams{
		Status: pgconv.StringPtrToPgtype(status),
		Search: pgconv.StringPtrToPgtype(search),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count payments", err)
	}
	return total, nil
}

func (r *PaymentReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	return mapPaymentRows(rows), nil
}

func mapPaymentRows(rows []sqlc.Payments) []*queries.PaymentView {
	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PaymentView{
			ID:            row.ID,
			UserID:        row.UserID,
			BookingID:     row.BookingID,
			AmountCents:   row.AmountCents,
			PaymentMethod: row.PaymentMethod,
			Status:        row.Status,
			TransactionID: row.TransactionID,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views
}
