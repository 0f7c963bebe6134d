package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BookingID     uuid.UUID `json:"booking_id"`
	AmountCents   int64     `json:"amount_cents"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PaymentFilter struct {
	Status *string
	Search *string
	PageRequest
}

type PaymentReadStore interface {
	Filter(ctx context.Context, status, search *string, limit, offset int32) ([]*PaymentView, error)
	CountFiltered(ctx context.Context, status, search *string) (int64, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, filter PaymentFilter) ([]*PaymentView, PageMeta, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) List(ctx context.Context, filter PaymentFilter) ([]*PaymentView, PageMeta, error) {
	status := statusFilter(filter.Status)
	search := blankToNil(filter.Search)
	offset, limit, meta := filter.offsetAndLimit()

	total, err := q.repo.CountFiltered(ctx, status, search)
	if err != nil {
		return nil, PageMeta{}, err
	}
	meta.Total = total
	if total == 0 {
		return []*PaymentView{}, meta, nil
	}

	rows, err := q.repo.Filter(ctx, status, search, limit, offset)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return rows, meta, nil
}

func (q *paymentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error) {
	return q.repo.FindByUser(ctx, userID)
}
