package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists persisted orders straight from the database,
// bypassing the domain model.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery("pending", nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Filters combine with AND; results are sorted by
// creation time, newest first. An empty result is a valid, empty slice.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if query.Status() != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status())
	}
	if userID := query.UserID(); userID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, userID.Bytes())
	}
	if restaurantID := query.RestaurantID(); restaurantID != nil {
		conditions = append(conditions, "restaurant_id = ?")
		args = append(args, restaurantID.Bytes())
	}

	sql := "SELECT " + orderViewColumns + " FROM orders"
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
