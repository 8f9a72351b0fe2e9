package kernel

import "ordering/internal/pkg/errs"

// Address is a value object holding the delivery address captured on an order.
// The address is copied at creation time, not referenced, so later changes to
// a user's profile never alter where a historical order was delivered.
//
// Only the street is mandatory; city, state, and zip code are free-form and
// optional, matching the wire format consumed by the surrounding services.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701")
//	if err != nil {
//	    // street was empty
//	}
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
}

// NewAddress creates a validated Address. Street must be non-empty.
func NewAddress(street, city, state, zipCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual reports whether two addresses have identical fields.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Validate returns an error for the zero value, which can only arise from
// bypassing NewAddress.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	return nil
}
