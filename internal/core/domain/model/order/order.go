package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// DeliveryWindow is the fixed preparation-plus-delivery window added to the
// creation time to produce the estimated delivery timestamp.
const DeliveryWindow = 45 * time.Minute

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - All identifiers are valid UUIDs
//   - The line sequence is non-empty and every line is valid
//   - The total equals the sum of line price × quantity as priced at creation;
//     it is never recomputed afterwards
//   - The restaurant name, line names/prices, and delivery address are
//     snapshots taken at creation and immutable thereafter
//   - Status transitions obey the Status state machine; every transition
//     refreshes the last-modified timestamp
//
// Orders can only be created through NewOrder (fresh orders) or RestoreOrder
// (reconstruction from persistence).
type Order struct {
	id             kernel.UUID
	userID         kernel.UUID
	restaurantID   kernel.UUID
	restaurantName string

	lines       []Line
	totalAmount float64

	deliveryAddress     kernel.Address
	paymentMethod       PaymentMethod
	paymentStatus       PaymentStatus
	specialInstructions string

	estimatedDeliveryTime time.Time
	status                Status
	createdAt             time.Time
	updatedAt             time.Time

	isConstructed bool
}

// NewOrder creates a fresh Order with validation. The lines must already
// carry menu-snapshot names and prices; the total is computed here and fixed
// for the lifetime of the order. Initial delivery status is Pending and
// initial payment status is PaymentPending. The estimated delivery time is
// now + DeliveryWindow.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	lines []Line,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	specialInstructions string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:                Pending,
		paymentStatus:         PaymentPending,
		specialInstructions:   specialInstructions,
		estimatedDeliveryTime: now.Add(DeliveryWindow),
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setRestaurantName(restaurantName),
		o.setLines(lines),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	for _, line := range o.lines {
		o.totalAmount += line.Total()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored total is
// trusted as-is rather than recomputed, so historical orders keep the prices
// in force when they were placed.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	lines []Line,
	totalAmount float64,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	specialInstructions string,
	estimatedDeliveryTime time.Time,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:           totalAmount,
		specialInstructions:   specialInstructions,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setRestaurantName(restaurantName),
		o.setLines(lines),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentMethod(paymentMethod),
		o.setPaymentStatus(paymentStatus),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through one of the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the identifier of the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// RestaurantName returns the restaurant display name snapshotted at creation.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// Lines returns a copy of the order lines; the aggregate's own slice stays
// immutable.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the order total as priced at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the delivery address captured at creation.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// PaymentMethod returns the declared payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the payment settlement status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// SpecialInstructions returns the optional free-text instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// EstimatedDeliveryTime returns the delivery estimate computed at creation.
func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to the target status and refreshes the
// last-modified timestamp.
//
// The transition is validated by the Status state machine: the target must be
// in the closed vocabulary and the current status must not be terminal.
// Non-adjacent forward jumps are accepted.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel transitions the order to Cancelled. Like every other transition it
// is rejected once the order is delivered or already cancelled.
func (o *Order) Cancel(now time.Time) error {
	return o.ChangeStatus(Cancelled, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	o.restaurantName = name
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
