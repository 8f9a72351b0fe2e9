package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// Notification is the payload handed to the notification dispatcher. The
// type vocabulary mirrors the order status vocabulary.
type Notification struct {
	UserID  string
	OrderID string
	Message string
	Type    string
}

// UserDirectoryClient looks up identities in the user directory, which is the
// sole source of truth for users. Only existence matters to this core.
//
// Implementations must honor the context deadline; a lookup that times out is
// reported as an error and, by policy, collapsed into not-found by the caller.
type UserDirectoryClient interface {
	// GetUser verifies that the user exists. A nil error means the user was
	// found; any error means it was not (or could not be) resolved.
	GetUser(ctx context.Context, id kernel.UUID) error
}

// RestaurantDirectoryClient fetches restaurants with their current menus from
// the restaurant directory, the sole source of truth for item prices and
// availability. The orchestrator never trusts client-supplied prices.
type RestaurantDirectoryClient interface {
	// GetRestaurant returns the restaurant with its full current menu.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*menu.Restaurant, error)
}

// NotificationDispatcher delivers user-facing notifications. Dispatch is
// best-effort by contract: callers log and swallow any error, and no
// implementation may be relied upon for delivery guarantees.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification Notification) error
}
