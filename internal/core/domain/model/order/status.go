package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// The forward chain is:
//
//	pending → confirmed → preparing → out_for_delivery → delivered
//
// with cancelled reachable from any non-terminal state. Delivered and
// cancelled are terminal: no transition leaves either of them.
//
// The machine is deliberately lenient about the forward chain itself: any
// valid target is accepted from a non-terminal state, so a jump such as
// pending → out_for_delivery is legal. Only leaving a terminal state is
// rejected. Callers wanting strict adjacency must enforce it themselves.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is placed.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire-format names for every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only the statuses that may appear on a
// persisted order, keyed by their wire names for parsing.
func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"pending":          Pending,
		"confirmed":        Confirmed,
		"preparing":        Preparing,
		"out_for_delivery": OutForDelivery,
		"delivered":        Delivered,
		"cancelled":        Cancelled,
	}
}

// StatusFromString parses a wire-format status name. Any string outside the
// closed vocabulary is rejected.
func StatusFromString(s string) (Status, error) {
	if status, ok := getValidStatusStrings()[s]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// String returns the wire-format name of the status, implementing
// fmt.Stringer. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the closed vocabulary.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a transition to target and returns the new status.
//
// Rules:
//   - target must be in the closed status vocabulary
//   - the current status must not be terminal
//
// Non-adjacent forward jumps (e.g. Pending → Delivered) are accepted; see
// the type documentation for the rationale.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, *errs.ValueIsInvalidError) if target is not a valid status
//   - (0, *errs.StateConflictError) if the current status is terminal
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewStateConflictErrorWithCause(
			"order status",
			s.String(),
			fmt.Errorf("no transition may leave the %s status", s.String()),
		)
	}

	return target, nil
}
