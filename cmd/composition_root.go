package cmd

import (
	"log/slog"
	"time"

	adapterhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/directory"
	"ordering/internal/adapters/out/notifier"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. It owns the long-lived pieces
// (database handle, directory clients, async notifier) and hands out fresh
// handlers on demand.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	userClient       *directory.UserClient
	restaurantClient *directory.RestaurantClient
	notifier         *notifier.AsyncDispatcher
	pricer           services.CartPricer
	logger           *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	timeout := time.Duration(configs.DirectoryTimeoutSeconds) * time.Second

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		userClient:       directory.NewUserClient(configs.UserServiceURL, timeout),
		restaurantClient: directory.NewRestaurantClient(configs.RestaurantServiceURL, timeout),
		notifier: notifier.NewAsyncDispatcher(
			notifier.NewClient(configs.NotificationServiceURL, timeout), logger),
		pricer: services.NewCartPricer(configs.RejectUnavailableItems),
		logger: logger,
	}
}

// Start launches the background pieces owned by the root.
func (c *CompositionRoot) Start() {
	c.notifier.Start()
}

// Stop shuts the background pieces down, draining the notifier queue.
func (c *CompositionRoot) Stop() {
	c.notifier.Stop()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, c.userClient, c.restaurantClient, c.notifier, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatsJob() *jobs.OrderStatsJob {
	return jobs.NewOrderStatsJob(c.CreateGetOrderStatsQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
