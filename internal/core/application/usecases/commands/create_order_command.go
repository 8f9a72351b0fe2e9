package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order. It carries
// only references and quantities; names, prices, and the total are resolved
// later against the restaurant directory's menu.
//
// The constructor performs all shape validation (well-formed identifiers,
// non-empty cart, positive quantities) so that malformed requests are
// rejected before any collaborator is called.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), userID, restaurantID,
//	    []services.CartItem{{MenuItemID: "m1", Quantity: 2}},
//	    address, order.PaymentCard, "ring the bell",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	userID              kernel.UUID
	restaurantID        kernel.UUID
	items               []services.CartItem
	deliveryAddress     kernel.Address
	paymentMethod       order.PaymentMethod
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command to place an order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []services.CartItem,
	deliveryAddress kernel.Address,
	paymentMethod order.PaymentMethod,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the identifier of the restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the requested cart items.
func (c CreateOrderCommand) Items() []services.CartItem {
	items := make([]services.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// DeliveryAddress returns the delivery address to capture on the order.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PaymentMethod returns the declared payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// SpecialInstructions returns the optional free-text instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.CartItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.MenuItemID == "" {
			return errs.NewValueIsRequiredError("menuItemId")
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}

	c.items = make([]services.CartItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
