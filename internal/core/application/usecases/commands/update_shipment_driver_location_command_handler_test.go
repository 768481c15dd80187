package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentDriverLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	testShipment := buildActiveShipment(t, kernel.NewUUID(), driverID)
	testDriver, _ := driver.RestoreDriver(driverID, "Maria Lopez", false, nil, nil)
	point, _ := kernel.NewGeoPoint(6.24420, -75.57365)

	cmd, err := commands.NewUpdateShipmentDriverLocationCommand(testShipment.ID(), point)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentDriverLocationCommandHandler(factory)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testShipment.ID().IsEqual(s.ID()))
	require.NotNil(t, testDriver.Location())
	assert.True(t, point.IsEqual(*testDriver.Location()))
	assert.False(t, testDriver.IsAvailable(), "location reports must not release the driver")

	driverRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentDriverLocationCommandHandler_Handle_NoDriver(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	testShipment, err := shipment.RestoreShipment(
		kernel.NewUUID(), orderID, nil, nil,
		shipment.PendingPickup, time.Now(), time.Now().Add(3*time.Hour), nil,
		nil, nil, "", "",
	)
	require.NoError(t, err)

	point, _ := kernel.NewGeoPoint(6.24420, -75.57365)
	cmd, _ := commands.NewUpdateShipmentDriverLocationCommand(testShipment.ID(), point)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentDriverLocationCommandHandler(factory)
	s, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, s.DriverID())
	driverRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateShipmentDriverLocationCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	point, _ := kernel.NewGeoPoint(6.24420, -75.57365)
	cmd, _ := commands.NewUpdateShipmentDriverLocationCommand(shipmentID, point)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentID", shipmentID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentDriverLocationCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
