package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderRequest is the payload for placing an order. Item prices are
// deliberately absent: pricing always comes from the restaurant's menu.
type CreateOrderRequest struct {
	UserID              string             `json:"userId" validate:"required,uuid"`
	RestaurantID        string             `json:"restaurantId" validate:"required,uuid"`
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress     AddressPayload     `json:"deliveryAddress" validate:"required"`
	PaymentMethod       string             `json:"paymentMethod" validate:"required,oneof=cash card upi"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// OrderItemRequest is one requested cart entry.
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// AddressPayload is the delivery address in wire format.
type AddressPayload struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// UpdateOrderStatusRequest is the payload for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse is one order line in wire format.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// OrderResponse is the full order representation returned by every route.
type OrderResponse struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"userId"`
	RestaurantID          string              `json:"restaurantId"`
	RestaurantName        string              `json:"restaurantName"`
	Items                 []OrderItemResponse `json:"items"`
	TotalAmount           float64             `json:"totalAmount"`
	DeliveryAddress       AddressPayload      `json:"deliveryAddress"`
	PaymentMethod         string              `json:"paymentMethod"`
	PaymentStatus         string              `json:"paymentStatus"`
	SpecialInstructions   string              `json:"specialInstructions,omitempty"`
	EstimatedDeliveryTime time.Time           `json:"estimatedDeliveryTime"`
	Status                string              `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// orderResponseFromAggregate maps a domain order to its wire representation.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	lines := o.Lines()
	items := make([]OrderItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItemResponse{
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			Price:      line.Price(),
			Quantity:   line.Quantity(),
		})
	}

	address := o.DeliveryAddress()

	return OrderResponse{
		ID:             o.ID().String(),
		UserID:         o.UserID().String(),
		RestaurantID:   o.RestaurantID().String(),
		RestaurantName: o.RestaurantName(),
		Items:          items,
		TotalAmount:    o.TotalAmount(),
		DeliveryAddress: AddressPayload{
			Street:  address.Street(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
		},
		PaymentMethod:         o.PaymentMethod().String(),
		PaymentStatus:         o.PaymentStatus().String(),
		SpecialInstructions:   o.SpecialInstructions(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		Status:                o.Status().String(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

// orderResponseFromView maps a query view to its wire representation.
func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, OrderItemResponse{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	return OrderResponse{
		ID:             view.ID.String(),
		UserID:         view.UserID.String(),
		RestaurantID:   view.RestaurantID.String(),
		RestaurantName: view.RestaurantName,
		Items:          items,
		TotalAmount:    view.TotalAmount,
		DeliveryAddress: AddressPayload{
			Street:  view.DeliveryAddress.Street,
			City:    view.DeliveryAddress.City,
			State:   view.DeliveryAddress.State,
			ZipCode: view.DeliveryAddress.ZipCode,
		},
		PaymentMethod:         view.PaymentMethod,
		PaymentStatus:         view.PaymentStatus,
		SpecialInstructions:   view.SpecialInstructions,
		EstimatedDeliveryTime: view.EstimatedDeliveryTime,
		Status:                view.Status,
		CreatedAt:             view.CreatedAt,
		UpdatedAt:             view.UpdatedAt,
	}
}
