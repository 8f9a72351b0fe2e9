package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally narrowed by status, user, or
// restaurant. All filters combine with AND; results always come back newest
// first.
//
// The status filter is matched verbatim against the stored wire-format string,
// so a value outside the status vocabulary simply matches nothing rather than
// erroring.
//
// Example:
//
//	query := NewGetOrdersQuery("pending", &userID, nil)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status       string
	userID       *kernel.UUID
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. Empty status and nil ids
// mean "no filter".
func NewGetOrdersQuery(status string, userID, restaurantID *kernel.UUID) GetOrdersQuery {
	return GetOrdersQuery{
		status:       status,
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or "" when unset.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// UserID returns the user filter, or nil when unset.
func (q GetOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// RestaurantID returns the restaurant filter, or nil when unset.
func (q GetOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}
