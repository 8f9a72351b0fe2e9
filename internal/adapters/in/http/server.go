// Package http is the inbound HTTP adapter exposing the order API. Handlers
// translate between the wire format and commands/queries; all business rules
// stay in the core.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Struct tag violations surface as 400 responses.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request payload validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
	}
}

// RegisterRoutes attaches every order route plus the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrderByID)
	e.GET("/orders/user/:userId", s.GetOrdersByUser)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.DELETE("/orders/:id", s.CancelOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"service":   "order-service",
		"status":    "running",
		"timestamp": time.Now().UTC(),
	})
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest,
			ErrorResponse{Error: "Invalid userId or restaurantId"})
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest,
			ErrorResponse{Error: "Invalid userId or restaurantId"})
	}

	address, err := kernel.NewAddress(
		req.DeliveryAddress.Street, req.DeliveryAddress.City,
		req.DeliveryAddress.State, req.DeliveryAddress.ZipCode)
	if err != nil {
		return s.respondError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return s.respondError(ctx, err)
	}

	items := make([]services.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.CartItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, restaurantID, items, address,
		paymentMethod, req.SpecialInstructions)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(placed))
}

// GetOrders handles GET /orders - lists orders with optional filters.
// A malformed userId or restaurantId filter is ignored rather than rejected;
// an unknown status filter simply matches nothing.
func (s *Server) GetOrders(ctx echo.Context) error {
	var userID, restaurantID *kernel.UUID

	if raw := ctx.QueryParam("userId"); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			userID = &id
		}
	}
	if raw := ctx.QueryParam("restaurantId"); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			restaurantID = &id
		}
	}

	query := queries.NewGetOrdersQuery(ctx.QueryParam("status"), userID, restaurantID)
	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, orderResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /orders/:id - fetches a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order ID"})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetOrdersByUser handles GET /orders/user/:userId - lists one user's orders.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
	}

	query := queries.NewGetOrdersQuery("", &userID, nil)
	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, orderResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /orders/:id/status - advances the lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order ID"})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// CancelOrder handles DELETE /orders/:id - cancels a non-terminal order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order ID"})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(cancelled))
}

// respondError maps core errors to HTTP statuses. Terminal-state violations
// map to 400 rather than 409 to stay compatible with existing callers.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrStateConflict):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError,
			ErrorResponse{Error: "internal error"})
	}
}
