package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// It verifies the user against the user directory, prices the cart against
// the restaurant's current menu, persists the order transactionally, and
// finally sends a best-effort "order placed" notification.
//
// Directory failures of any kind (missing record, timeout, transport error)
// are collapsed into a not-found error so callers see a uniform outcome; the
// underlying cause is preserved on the error for diagnostics.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, restaurants, notifier, pricer, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	users       ports.UserDirectoryClient
	restaurants ports.RestaurantDirectoryClient
	notifier    ports.NotificationDispatcher
	pricer      services.CartPricer
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectoryClient,
	restaurants ports.RestaurantDirectoryClient,
	notifier ports.NotificationDispatcher,
	pricer services.CartPricer,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		users:       users,
		restaurants: restaurants,
		notifier:    notifier,
		pricer:      pricer,
		logger:      logger,
	}
}

// Handle processes the order placement command.
//
// Steps, in order: validate the command shape, verify the user exists, fetch
// the restaurant with its menu, price the cart from the menu (never from
// client-supplied prices), build the aggregate, and persist it inside a
// transaction. The notification fires only after a successful commit and
// never fails the operation.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.users.GetUser(ctx, cmd.UserID()); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("user", cmd.UserID().String(), err)
	}

	restaurant, err := h.restaurants.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"restaurant", cmd.RestaurantID().String(), err)
	}

	lines, err := h.pricer.Price(restaurant, cmd.Items())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.RestaurantID(),
		restaurant.Name,
		lines,
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		cmd.SpecialInstructions(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatchStatusNotification(ctx, h.logger, h.notifier, aggregate)

	return aggregate, nil
}
