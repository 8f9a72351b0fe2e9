package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Line is an immutable order line. The name and unit price are snapshotted
// from the restaurant's menu at order time; the menu item identifier is a
// reference into the restaurant directory's namespace and is treated as an
// opaque string here.
type Line struct {
	menuItemID string
	name       string
	price      float64
	quantity   int
}

// NewLine creates a validated order line.
//
// Invariants:
//   - menuItemID and name must be non-empty
//   - price must not be negative
//   - quantity must be at least 1
func NewLine(menuItemID, name string, price float64, quantity int) (Line, error) {
	if menuItemID == "" {
		return Line{}, errs.NewValueIsRequiredError("menuItemId")
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is negative", price),
		)
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Line{
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the referenced menu item identifier.
func (l Line) MenuItemID() string {
	return l.menuItemID
}

// Name returns the item name as snapshotted from the menu.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price as snapshotted from the menu.
func (l Line) Price() float64 {
	return l.price
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns the line's contribution to the order total.
func (l Line) Total() float64 {
	return l.price * float64(l.quantity)
}

// Validate returns an error for a zero-value line.
func (l Line) Validate() error {
	if l.menuItemID == "" || l.name == "" || l.quantity < 1 {
		return errs.NewValueIsRequiredError("line must be created via NewLine")
	}
	return nil
}
