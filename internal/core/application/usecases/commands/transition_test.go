package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := persistedOrder(t)
	require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
	o.ClearPendingChanges()
	return o
}

func newAcceptHandler(factory commands.UoWFactory, assembler commands.OrderAssembler) commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(factory, assembler,
		services.NewTransitionPolicy(services.ProgressionLenient), nil)
}

func TestAcceptOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	var cmd commands.AcceptOrderCommand
	factory := new(MockUoWFactory)

	_, err := newAcceptHandler(factory, new(MockAssembler)).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptOrderCommandHandler_Handle_ForbiddenFailsBeforeTransaction(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(assignedOrder(t), nil).Once()

	cmd, err := commands.NewAcceptOrderCommand(clientActor(t), orderID, "")
	require.NoError(t, err)

	// Act
	_, err = newAcceptHandler(factory, new(MockAssembler)).Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	cmd, err := commands.NewAcceptOrderCommand(vendorActor(t), orderID, "")
	require.NoError(t, err)

	_, err = newAcceptHandler(factory, new(MockAssembler)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_RechecksLockedRow(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)

	// A concurrent accept committed between the unlocked read and the lock.
	stale := assignedOrder(t)
	locked := assignedOrder(t)
	require.NoError(t, locked.Accept(vendorUserID, ""))
	locked.ClearPendingChanges()

	uow.expectRollback(ctx)
	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(stale, nil).Once()
	orders.On("GetForUpdate", ctx, orderID).Return(locked, nil).Once()

	cmd, err := commands.NewAcceptOrderCommand(vendorActor(t), orderID, "")
	require.NoError(t, err)

	// Act
	_, err = newAcceptHandler(factory, new(MockAssembler)).Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_RecheckSeesReassignment(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)

	stale := assignedOrder(t)
	locked := persistedOrder(t)
	require.NoError(t, locked.AssignVendor(otherVendorID, adminID, ""))

	uow.expectRollback(ctx)
	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(stale, nil).Once()
	orders.On("GetForUpdate", ctx, orderID).Return(locked, nil).Once()

	cmd, err := commands.NewAcceptOrderCommand(vendorActor(t), orderID, "")
	require.NoError(t, err)

	// Act
	_, err = newAcceptHandler(factory, new(MockAssembler)).Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errs.NewInfrastructureError("update order", errors.New("deadlock detected"))
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)
	locked := assignedOrder(t)

	uow.expectRollback(ctx)
	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(assignedOrder(t), nil).Once()
	orders.On("GetForUpdate", ctx, orderID).Return(locked, nil).Once()
	orders.On("Update", ctx, locked).Return(expectedError).Once()

	cmd, err := commands.NewAcceptOrderCommand(vendorActor(t), orderID, "")
	require.NoError(t, err)

	// Act
	_, err = newAcceptHandler(factory, new(MockAssembler)).Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, expectedError)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := &MockUoW{Orders: orders}
	factory := new(MockUoWFactory)
	assembler := new(MockAssembler)
	observer := new(MockObserver)
	locked := assignedOrder(t)

	uow.expectCommit(ctx)
	factory.On("Create").Return(uow).Once()
	orders.On("Get", ctx, orderID).Return(assignedOrder(t), nil).Once()
	orders.On("GetForUpdate", ctx, orderID).Return(locked, nil).Once()
	orders.On("Update", ctx, locked).Return(nil).Once()
	observer.On("ObserveTransition", "accept", order.InProgress).Return().Once()
	assembler.On("Assemble", ctx, orderID).Return(queriesDetails(order.InProgress), nil).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, assembler,
		services.NewTransitionPolicy(services.ProgressionLenient), observer)
	cmd, err := commands.NewAcceptOrderCommand(vendorActor(t), orderID, "starting tomorrow")
	require.NoError(t, err)

	// Act
	details, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", details.Status)
	assert.Equal(t, order.InProgress, locked.Status())
	require.Len(t, locked.PendingChanges(), 1)
	require.NotNil(t, locked.PendingChanges()[0].Note)
	assert.Equal(t, "starting tomorrow", *locked.PendingChanges()[0].Note)
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
	observer.AssertExpectations(t)
}
