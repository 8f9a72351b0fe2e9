package services

import (
	"fmt"

	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CartItem is one requested (menu item, quantity) pair of an incoming cart.
// The caller may not supply a price; pricing comes from the menu alone.
type CartItem struct {
	MenuItemID string
	Quantity   int
}

// CartPricer is the domain service that prices a requested cart against a
// restaurant's current menu.
//
// Business rules:
//   - Every requested item must match a menu entry by identifier; a single
//     unmatched item aborts the whole cart, so partial orders never exist
//   - Each resulting line snapshots the menu's name and unit price
//   - Quantities must already be positive (enforced again by order.NewLine)
//   - Item availability is informational by default; when the pricer is
//     constructed with rejectUnavailable, carts containing unavailable items
//     are rejected instead
//
// Example:
//
//	pricer := services.NewCartPricer(false)
//	lines, err := pricer.Price(restaurant, []services.CartItem{{MenuItemID: "m1", Quantity: 2}})
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // a requested item is not on the menu
//	}
type CartPricer struct {
	rejectUnavailable bool
}

// NewCartPricer creates a CartPricer with the given availability policy.
func NewCartPricer(rejectUnavailable bool) CartPricer {
	return CartPricer{rejectUnavailable: rejectUnavailable}
}

// Price matches every requested item against the restaurant's menu and
// returns the priced order lines. The order total is derived from these lines
// by the Order constructor.
//
// Returns:
//   - *errs.ObjectNotFoundError when a requested item id has no menu match
//   - *errs.ValueIsInvalidError when availability rejection is enabled and a
//     matched item is flagged unavailable
func (p CartPricer) Price(restaurant *menu.Restaurant, items []CartItem) ([]order.Line, error) {
	if restaurant == nil {
		return nil, errs.NewValueIsRequiredError("restaurant")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		entry, ok := restaurant.FindItem(item.MenuItemID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", item.MenuItemID)
		}

		if p.rejectUnavailable && !entry.Available {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menuItemId",
				fmt.Errorf("%s is currently unavailable", item.MenuItemID),
			)
		}

		line, err := order.NewLine(entry.ID, entry.Name, entry.Price, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
