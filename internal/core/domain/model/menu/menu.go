// Package menu holds the read model for a restaurant's menu as served by the
// restaurant directory. The directory owns this data; the ordering core only
// reads it to price carts, so these are plain values without aggregate
// invariants of their own.
package menu

// Item is a single menu entry. The price is authoritative for pricing;
// Available is informational unless the availability policy is enabled.
type Item struct {
	ID        string
	Name      string
	Price     float64
	Available bool
}

// Restaurant is a restaurant with its full current menu, as returned by a
// directory lookup. Identifiers are kept as strings: they belong to the
// directory's namespace.
type Restaurant struct {
	ID    string
	Name  string
	Items []Item
}

// FindItem looks up a menu entry by identifier.
func (r Restaurant) FindItem(id string) (Item, bool) {
	for _, item := range r.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
