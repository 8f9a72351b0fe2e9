package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// menuItemDTO mirrors one menu entry in the restaurant directory's wire
// format. Availability defaults to true when the field is absent, matching the
// directory's own schema default.
type menuItemDTO struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable *bool   `json:"isAvailable"`
}

// restaurantDTO mirrors the restaurant directory's wire format.
type restaurantDTO struct {
	ID   string        `json:"_id"`
	Name string        `json:"name"`
	Menu []menuItemDTO `json:"menu"`
}

// RestaurantClient fetches restaurants with their menus from the restaurant
// directory.
type RestaurantClient struct {
	baseURL string
	client  *http.Client
}

// NewRestaurantClient creates a client for the restaurant directory at baseURL.
func NewRestaurantClient(baseURL string, timeout time.Duration) *RestaurantClient {
	return &RestaurantClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetRestaurant returns the restaurant with its full current menu.
func (c *RestaurantClient) GetRestaurant(
	ctx context.Context,
	id kernel.UUID,
) (*menu.Restaurant, error) {
	url := fmt.Sprintf("%s/api/restaurants/%s", c.baseURL, id.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restaurant directory returned %s", resp.Status)
	}

	var dto restaurantDTO
	if err = json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decoding restaurant: %w", err)
	}

	items := make([]menu.Item, 0, len(dto.Menu))
	for _, item := range dto.Menu {
		available := true
		if item.IsAvailable != nil {
			available = *item.IsAvailable
		}
		items = append(items, menu.Item{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Available: available,
		})
	}

	return &menu.Restaurant{
		ID:    dto.ID,
		Name:  dto.Name,
		Items: items,
	}, nil
}
