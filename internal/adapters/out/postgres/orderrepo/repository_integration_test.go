package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

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
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder() *order.Order {
	line1, err := order.NewLine("M1", "Burger", 5.00, 2)
	suite.Require().NoError(err)
	line2, err := order.NewLine("M2", "Pizza", 8.50, 1)
	suite.Require().NoError(err)

	address, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Testaurant",
		[]order.Line{line1, line2}, address, order.PaymentCard, "ring twice",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTripsTheAggregate() {
	ctx := context.Background()
	placed := suite.newOrder()

	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(placed))
	suite.True(loaded.UserID().IsEqual(placed.UserID()))
	suite.True(loaded.RestaurantID().IsEqual(placed.RestaurantID()))
	suite.Equal("Testaurant", loaded.RestaurantName())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.PaymentCard, loaded.PaymentMethod())
	suite.Equal(order.PaymentPending, loaded.PaymentStatus())
	suite.Equal("ring twice", loaded.SpecialInstructions())
	suite.InDelta(18.50, loaded.TotalAmount(), 0.001)
	suite.True(loaded.DeliveryAddress().IsEqual(placed.DeliveryAddress()))

	lines := loaded.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("Burger", lines[0].Name())
	suite.Equal(2, lines[0].Quantity())
	suite.Equal("Pizza", lines[1].Name())
	suite.InDelta(8.50, lines[1].Price(), 0.001)
}

func (suite *GormOrderRepositoryTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	placed := suite.newOrder()
	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	err = placed.ChangeStatus(order.Confirmed, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, placed)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_KeepsTheStoredTotal() {
	ctx := context.Background()
	placed := suite.newOrder()
	err := suite.repo.Add(ctx, placed)
	suite.Require().NoError(err)

	err = placed.Cancel(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, placed)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.InDelta(18.50, loaded.TotalAmount(), 0.001)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	err := suite.repo.Update(context.Background(), suite.newOrder())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
