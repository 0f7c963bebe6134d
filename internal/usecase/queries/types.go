package queries

import (
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxListLimit = 100
)

var (
	ErrBookingNotFound = errs.New("booking view not found")
	ErrBookingAccess   = errs.New("booking belongs to another user")
)

// PageRequest carries optional offset pagination parameters
type PageRequest struct {
	Page  *int
	Limit *int
}

type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func (p PageRequest) Normalize() (page, limit int) {
	page = patch.Coalesce(p.Page, DefaultPage)
	limit = patch.Coalesce(p.Limit, DefaultLimit)
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return page, limit
}

// #nosec G115 -- page and limit are bounded by Normalize
func (p PageRequest) offsetAndLimit() (offset, limit int32, meta PageMeta) {
	page, lim := p.Normalize()
	return int32((page - 1) * lim), int32(lim), PageMeta{Page: page, Limit: lim}
}
