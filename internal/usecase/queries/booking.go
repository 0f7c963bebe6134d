package queries

import (
	"context"
	"strings"
	"time"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                uuid.UUID           `json:"id"`
	UserID            uuid.UUID           `json:"user_id"`
	TotalAmountCents  int64               `json:"total_amount_cents"`
	ContactName       string              `json:"contact_name"`
	ContactEmail      string              `json:"contact_email"`
	ContactPhone      string              `json:"contact_phone"`
	ContactAddress    string              `json:"contact_address"`
	ContactCity       string              `json:"contact_city"`
	TransactionID     string              `json:"transaction_id"`
	CancelProbability float64             `json:"cancel_probability"`
	Status            string              `json:"status"`
	Rooms             []BookingRoomView   `json:"rooms"`
	Payment           *BookingPaymentView `json:"payment,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type BookingRoomView struct {
	RoomID     uuid.UUID `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	PriceCents int64     `json:"price_cents"`
}

type BookingPaymentView struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	AmountCents int64     `json:"amount_cents"`
}

type BookingFilter struct {
	Status *string
	Search *string
	PageRequest
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	Filter(ctx context.Context, status, search *string, limit, offset int32) ([]*BookingView, error)
	CountFiltered(ctx context.Context, status, search *string) (int64, error)
	FindBookedRanges(ctx context.Context, roomID uuid.UUID, from time.Time) ([]availability.Occupancy, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, PageMeta, error)
	BookedDates(ctx context.Context, roomID uuid.UUID) ([]time.Time, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(repo BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actorRole.IsStaff() && view.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByUser(ctx, userID)
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, PageMeta, error) {
	status := statusFilter(filter.Status)
	search := blankToNil(filter.Search)
	offset, limit, meta := filter.offsetAndLimit()

	total, err := q.repo.CountFiltered(ctx, status, search)
	if err != nil {
		return nil, PageMeta{}, err
	}
	meta.Total = total
	if total == 0 {
		return []*BookingView{}, meta, nil
	}

	rows, err := q.repo.Filter(ctx, status, search, limit, offset)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return rows, meta, nil
}

// BookedDates lists the occupied nights of a room from today onward.
func (q *bookingQueriesImpl) BookedDates(ctx context.Context, roomID uuid.UUID) ([]time.Time, error) {
	today := clock.Today(q.clock)
	occupancies, err := q.repo.FindBookedRanges(ctx, roomID, today)
	if err != nil {
		return nil, err
	}
	return availability.BookedNights(occupancies, today), nil
}

// statusFilter lowercases a status criterion; "all" means no filter.
func statusFilter(s *string) *string {
	trimmed := blankToNil(s)
	if trimmed == nil {
		return nil
	}
	lower := strings.ToLower(*trimmed)
	if lower == "all" {
		return nil
	}
	return &lower
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
