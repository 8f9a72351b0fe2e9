// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines are embedded as a JSONB document rather than a child table: lines
// are immutable snapshots that are only ever read back with their order, so a
// join buys nothing. Statuses are stored as their wire-format strings, which
// keeps the rows readable and makes status filters trivially comparable.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID          uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantName        string     `gorm:"type:varchar(255)"`
	Lines                 LinesDTO   `gorm:"type:jsonb"`
	TotalAmount           float64    `gorm:"type:numeric"`
	Address               AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod         string     `gorm:"type:varchar(32)"`
	PaymentStatus         string     `gorm:"type:varchar(32)"`
	SpecialInstructions   string
	EstimatedDeliveryTime time.Time
	Status                string    `gorm:"type:varchar(32);index"`
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(128)"`
	State   string `gorm:"type:varchar(128)"`
	ZipCode string `gorm:"type:varchar(32)"`
}

// LineDTO is one order line as stored inside the JSONB lines column. The JSON
// keys match the wire format exposed over HTTP.
type LineDTO struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// LinesDTO is the JSONB-backed collection of order lines.
type LinesDTO []LineDTO

// Value implements driver.Valuer, serializing the lines to JSON for storage.
func (l LinesDTO) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner, deserializing the JSONB column.
func (l *LinesDTO) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into LinesDTO", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make(LinesDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, LineDTO{
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			Price:      line.Price(),
			Quantity:   line.Quantity(),
		})
	}

	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.UserID().Bytes(),
		RestaurantID:   aggregate.RestaurantID().Bytes(),
		RestaurantName: aggregate.RestaurantName(),
		Lines:          lines,
		TotalAmount:    aggregate.TotalAmount(),
		Address: AddressDTO{
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
		},
		PaymentMethod:         aggregate.PaymentMethod().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Status:                aggregate.Status().String(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so the stored total
// and timestamps are trusted rather than recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(
			lineDTO.MenuItemID, lineDTO.Name, lineDTO.Price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	address, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.ZipCode)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		restaurantID,
		dto.RestaurantName,
		lines,
		dto.TotalAmount,
		address,
		paymentMethod,
		paymentStatus,
		dto.SpecialInstructions,
		dto.EstimatedDeliveryTime,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
