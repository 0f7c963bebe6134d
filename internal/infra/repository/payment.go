package repository

import (
	"context"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPaymentByTransactionIDForUpdate(ctx context.Context, db sqlc.DBTX, transactionID string) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByTransactionIDForUpdate(ctx context.Context, tx sqlc.DBTX, transactionID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByTransactionIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by transaction id", err)
	}
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err)
	}
	return p, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	affected, err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		ID:            p.ID(),
		Status:        p.Status().String(),
		PaymentMethod: p.Method(),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
