// Package order contains the Order aggregate and its supporting value
// objects: the delivery Status state machine, the immutable order Line, and
// the payment method/status vocabularies.
//
// An Order is created exactly once, with its lines and total priced
// authoritatively from the restaurant's menu at creation time. After creation
// the only permitted mutations are status transitions (including cancel),
// which also refresh the last-modified timestamp. Totals are never recomputed
// from a live menu, so historical orders are immune to later price changes.
package order
