package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildActiveShipment(t *testing.T, orderID, driverID kernel.UUID) *shipment.Shipment {
	t.Helper()
	now := time.Now()
	s, err := shipment.NewShipment(kernel.NewUUID(), orderID, driverID, nil, now, now.Add(3*time.Hour))
	require.NoError(t, err)
	return s
}

func TestRecordDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	testShipment := buildActiveShipment(t, orderID, driverID)
	testDriver, _ := driver.RestoreDriver(driverID, "Maria Lopez", false, nil, nil)
	testOrder, _ := order.NewOrder(orderID, customerID, "ORD-010", "received", time.Now())

	cmd, err := commands.NewRecordDeliveryCommand(testShipment.ID(), "qr-token", "sig-token")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, s.Status())
	require.NotNil(t, s.ActualDeliveryTime())
	assert.Equal(t, "qr-token", s.QRCode())
	assert.Equal(t, "sig-token", s.Signature())
	assert.True(t, testDriver.IsAvailable())

	require.Len(t, queue.Notifications, 1)
	assert.True(t, customerID.IsEqual(queue.Notifications[0].EntityID))
	assert.Equal(t, "Shipment delivered", queue.Notifications[0].Title)
	assert.Contains(t, queue.Notifications[0].Body, "ORD-010")

	shipmentRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewRecordDeliveryCommand(shipmentID, "qr", "sig")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentID", shipmentID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, queue.Notifications)
}

func TestRecordDeliveryCommandHandler_Handle_DriverGone(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testShipment := buildActiveShipment(t, orderID, driverID)
	testOrder, _ := order.NewOrder(orderID, kernel.NewUUID(), "ORD-011", "received", time.Now())

	cmd, _ := commands.NewRecordDeliveryCommand(testShipment.ID(), "qr", "sig")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driverID", driverID)).
			Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, s.Status())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	require.Len(t, queue.Notifications, 1)
}

func TestRecordDeliveryCommandHandler_Handle_OrderGone_SkipsNotification(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testShipment := buildActiveShipment(t, orderID, driverID)
	testDriver, _ := driver.RestoreDriver(driverID, "Maria Lopez", false, nil, nil)

	cmd, _ := commands.NewRecordDeliveryCommand(testShipment.ID(), "qr", "sig")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, s.Status())
	assert.Empty(t, queue.Notifications)
}

func TestRecordDeliveryCommandHandler_Handle_Redelivery_Overwrites(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	now := time.Now()
	earlier := now.Add(-time.Hour)
	testShipment, err := shipment.RestoreShipment(
		kernel.NewUUID(), orderID, nil, nil,
		shipment.Delivered, now.Add(-2*time.Hour), now.Add(time.Hour), &earlier,
		nil, nil, "old-qr", "old-sig",
	)
	require.NoError(t, err)
	testOrder, _ := order.NewOrder(orderID, kernel.NewUUID(), "ORD-012", "received", now)

	cmd, _ := commands.NewRecordDeliveryCommand(testShipment.ID(), "new-qr", "new-sig")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "new-qr", s.QRCode())
	assert.Equal(t, "new-sig", s.Signature())
	require.NotNil(t, s.ActualDeliveryTime())
	assert.True(t, s.ActualDeliveryTime().After(earlier))
	driverRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRecordDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewRecordDeliveryCommandHandler(factory, new(CapturingQueue))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRecordDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testShipment := buildActiveShipment(t, orderID, driverID)
	testDriver, _ := driver.RestoreDriver(driverID, "Maria Lopez", false, nil, nil)
	testOrder, _ := order.NewOrder(orderID, kernel.NewUUID(), "ORD-013", "received", time.Now())

	cmd, _ := commands.NewRecordDeliveryCommand(testShipment.ID(), "qr", "sig")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(CapturingQueue)
	handler := commands.NewRecordDeliveryCommandHandler(factory, queue)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	assert.Empty(t, queue.Notifications)
}
