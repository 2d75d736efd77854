package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds live orders whose deadline passed before Now.
// It is issued by the overdue monitor, not by API callers.
type GetOverdueOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(now time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Now() time.Time {
	return q.now
}
