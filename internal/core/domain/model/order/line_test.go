package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("creates a valid line", func(t *testing.T) {
		line, err := order.NewLine("m1", "Burger", 5.00, 2)

		require.NoError(t, err)
		assert.Equal(t, "m1", line.MenuItemID())
		assert.Equal(t, "Burger", line.Name())
		assert.Equal(t, 5.00, line.Price())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, 10.00, line.Total())
		assert.NoError(t, line.Validate())
	})

	t.Run("allows a zero price", func(t *testing.T) {
		line, err := order.NewLine("m1", "Tap water", 0, 1)

		require.NoError(t, err)
		assert.Equal(t, 0.0, line.Total())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name       string
			menuItemID string
			itemName   string
			price      float64
			quantity   int
			sentinel   error
		}{
			{"empty menu item id", "", "Burger", 5.00, 1, errs.ErrValueIsRequired},
			{"empty name", "m1", "", 5.00, 1, errs.ErrValueIsRequired},
			{"negative price", "m1", "Burger", -0.01, 1, errs.ErrValueIsInvalid},
			{"zero quantity", "m1", "Burger", 5.00, 0, errs.ErrValueIsInvalid},
			{"negative quantity", "m1", "Burger", 5.00, -2, errs.ErrValueIsInvalid},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewLine(tc.menuItemID, tc.itemName, tc.price, tc.quantity)
				require.Error(t, err)
				require.ErrorIs(t, err, tc.sentinel)
			})
		}
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.Line
		require.Error(t, line.Validate())
	})
}
