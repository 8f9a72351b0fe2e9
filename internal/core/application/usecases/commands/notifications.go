package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// statusNotification builds the notification describing an order's current
// status. The type vocabulary mirrors the status vocabulary; a freshly placed
// order maps to "order_placed" rather than "pending".
func statusNotification(o *order.Order) ports.Notification {
	var notificationType, message string

	switch o.Status() {
	case order.Pending:
		notificationType = "order_placed"
		message = fmt.Sprintf("Your order from %s has been placed.", o.RestaurantName())
	case order.Confirmed:
		notificationType = "order_confirmed"
		message = fmt.Sprintf("Your order from %s has been confirmed.", o.RestaurantName())
	case order.Preparing:
		notificationType = "order_preparing"
		message = fmt.Sprintf("%s is preparing your order.", o.RestaurantName())
	case order.OutForDelivery:
		notificationType = "out_for_delivery"
		message = fmt.Sprintf("Your order from %s is out for delivery.", o.RestaurantName())
	case order.Delivered:
		notificationType = "delivered"
		message = fmt.Sprintf("Your order from %s has been delivered.", o.RestaurantName())
	case order.Cancelled:
		notificationType = "cancelled"
		message = fmt.Sprintf("Your order from %s has been cancelled.", o.RestaurantName())
	default:
		notificationType = "order_placed"
		message = fmt.Sprintf("Your order from %s was updated.", o.RestaurantName())
	}

	return ports.Notification{
		UserID:  o.UserID().String(),
		OrderID: o.ID().String(),
		Message: message,
		Type:    notificationType,
	}
}

// dispatchStatusNotification attempts a single best-effort notification for
// the order's current status. Failures are logged and swallowed: the order
// record is the system of record and has already been committed, so a failed
// notification must never surface as a failure of the triggering operation.
func dispatchStatusNotification(
	ctx context.Context,
	logger *slog.Logger,
	dispatcher ports.NotificationDispatcher,
	o *order.Order,
) {
	notification := statusNotification(o)
	if err := dispatcher.Dispatch(ctx, notification); err != nil {
		logger.WarnContext(ctx, "notification dispatch failed",
			"order_id", notification.OrderID,
			"type", notification.Type,
			"error", err,
		)
	}
}
