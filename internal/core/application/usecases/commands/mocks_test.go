package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserDirectoryClient struct{ mock.Mock }

func (m *MockUserDirectoryClient) GetUser(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRestaurantDirectoryClient struct{ mock.Mock }

func (m *MockRestaurantDirectoryClient) GetRestaurant(
	ctx context.Context,
	id kernel.UUID,
) (*menu.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Restaurant), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(
	ctx context.Context,
	notification ports.Notification,
) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

var errBoom = errors.New("boom")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701")
	require.NoError(t, err)
	return addr
}

func testMenu(restaurantID kernel.UUID) *menu.Restaurant {
	return &menu.Restaurant{
		ID:   restaurantID.String(),
		Name: "Testaurant",
		Items: []menu.Item{
			{ID: "M1", Name: "Burger", Price: 5.00, Available: true},
			{ID: "M2", Name: "Pizza", Price: 8.50, Available: true},
		},
	}
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine("M1", "Burger", 5.00, 2)
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Testaurant",
		[]order.Line{line}, 10.00,
		testAddress(t), order.PaymentCard, order.PaymentPending, "",
		now.Add(order.DeliveryWindow), status, now, now,
	)
	require.NoError(t, err)
	return o
}
