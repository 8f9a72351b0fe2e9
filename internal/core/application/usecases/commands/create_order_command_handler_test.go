package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placeOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validCartItems(), testAddress(t), order.PaymentCard, "leave at door",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	notifier := new(MockNotificationDispatcher)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once(),
		restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).
			Return(testMenu(cmd.RestaurantID()), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", mock.Anything, mock.AnythingOfType("ports.Notification")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(
		factory, users, restaurants, notifier, services.NewCartPricer(false), testLogger())
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, "Testaurant", placed.RestaurantName())
	assert.Equal(t, 18.50, placed.TotalAmount())
	assert.Equal(t, "Burger", placed.Lines()[0].Name())

	users.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotifierFailureStillSucceeds(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	notifier := new(MockNotificationDispatcher)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once()
	restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).
		Return(testMenu(cmd.RestaurantID()), nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("Dispatch", mock.Anything, mock.Anything).Return(errBoom).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, users, restaurants, notifier, services.NewCartPricer(false), testLogger())
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockUserDirectoryClient),
		new(MockRestaurantDirectoryClient), new(MockNotificationDispatcher),
		services.NewCartPricer(false), testLogger())

	_, err := h.Handle(ctx, commands.CreateOrderCommand{}) // not constructed properly
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	users.On("GetUser", ctx, cmd.UserID()).Return(errBoom).Once()

	// The factory has no expectations: the handler must abort before
	// opening a transaction.
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(
		factory, users, new(MockRestaurantDirectoryClient),
		new(MockNotificationDispatcher), services.NewCartPricer(false), testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "boom")
	users.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	mock.InOrder(
		users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once(),
		restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).Return(nil, errBoom).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), users, restaurants,
		new(MockNotificationDispatcher), services.NewCartPricer(false), testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	users.AssertExpectations(t)
	restaurants.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]services.CartItem{{MenuItemID: "off-menu", Quantity: 1}},
		testAddress(t), order.PaymentCash, "",
	)
	require.NoError(t, err)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once()
	restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).
		Return(testMenu(cmd.RestaurantID()), nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), users, restaurants,
		new(MockNotificationDispatcher), services.NewCartPricer(false), testLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once()
	restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).
		Return(testMenu(cmd.RestaurantID()), nil).Once()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errBoom).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// No Dispatch expectation: a failed store never notifies.
	notifier := new(MockNotificationDispatcher)

	h := commands.NewCreateOrderCommandHandler(
		factory, users, restaurants, notifier, services.NewCartPricer(false), testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t)

	users := new(MockUserDirectoryClient)
	restaurants := new(MockRestaurantDirectoryClient)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	users.On("GetUser", ctx, cmd.UserID()).Return(nil).Once()
	restaurants.On("GetRestaurant", ctx, cmd.RestaurantID()).
		Return(testMenu(cmd.RestaurantID()), nil).Once()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errBoom).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(
		factory, users, restaurants, new(MockNotificationDispatcher),
		services.NewCartPricer(false), testLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
