// Package queries contains read-only business operations implementing the
// query side of the CQRS architecture. Query handlers read the database
// directly and return flat view models; they never load domain aggregates and
// never modify state.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LineView is one order line as presented to readers. The JSON keys match the
// stored JSONB document, so lines unmarshal straight from the column.
type LineView struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// AddressView is the delivery address as presented to readers.
type AddressView struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// OrderView is the flat read model for a persisted order. Statuses appear in
// their wire-format string form; no domain invariants are enforced on a view.
type OrderView struct {
	ID                    kernel.UUID
	UserID                kernel.UUID
	RestaurantID          kernel.UUID
	RestaurantName        string
	Lines                 []LineView
	TotalAmount           float64
	DeliveryAddress       AddressView
	PaymentMethod         string
	PaymentStatus         string
	SpecialInstructions   string
	EstimatedDeliveryTime time.Time
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// orderViewColumns is the column list every order view query selects, in the
// order scanOrderView consumes them.
const orderViewColumns = `
	id,
	user_id,
	restaurant_id,
	restaurant_name,
	lines,
	total_amount,
	address_street,
	address_city,
	address_state,
	address_zip_code,
	payment_method,
	payment_status,
	special_instructions,
	estimated_delivery_time,
	status,
	created_at,
	updated_at`

// scanOrderView reads one row produced with orderViewColumns into an OrderView.
func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view         OrderView
		id           uuid.UUID
		userID       uuid.UUID
		restaurantID uuid.UUID
		linesRaw     []byte
	)

	err := rows.Scan(
		&id,
		&userID,
		&restaurantID,
		&view.RestaurantName,
		&linesRaw,
		&view.TotalAmount,
		&view.DeliveryAddress.Street,
		&view.DeliveryAddress.City,
		&view.DeliveryAddress.State,
		&view.DeliveryAddress.ZipCode,
		&view.PaymentMethod,
		&view.PaymentStatus,
		&view.SpecialInstructions,
		&view.EstimatedDeliveryTime,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, err
	}
	if view.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderView{}, err
	}

	if len(linesRaw) > 0 {
		if err = json.Unmarshal(linesRaw, &view.Lines); err != nil {
			return OrderView{}, err
		}
	}

	return view, nil
}
