package queries_test

import (
	"context"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startOrdersDatabase spins up a disposable postgres instance with the orders
// table migrated.
func startOrdersDatabase(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, nil, err
	}

	return container, db, nil
}

// seedOrder persists a fresh order for the given user and restaurant, moved to
// the wanted status, created at the given time.
func seedOrder(
	ctx context.Context,
	repo *orderrepo.GormOrderRepository,
	userID, restaurantID kernel.UUID,
	status order.Status,
	createdAt time.Time,
) (*order.Order, error) {
	line, err := order.NewLine("M1", "Burger", 5.00, 2)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701")
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), userID, restaurantID, "Testaurant",
		[]order.Line{line}, address, order.PaymentCash, "",
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	if status != order.Pending {
		if err = o.ChangeStatus(status, createdAt); err != nil {
			return nil, err
		}
	}

	return o, repo.Add(ctx, o)
}
