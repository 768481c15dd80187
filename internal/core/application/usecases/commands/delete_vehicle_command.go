package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand removes a vehicle record. Drivers referencing the
// vehicle are detached by the store; shipment vehicle snapshots are
// historical copies and stay behind.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to delete a vehicle.
func NewDeleteVehicleCommand(id kernel.UUID) (DeleteVehicleCommand, error) {
	command := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return DeleteVehicleCommand{}, err
	}
	command.id = id

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// ID returns the vehicle to delete.
func (c DeleteVehicleCommand) ID() kernel.UUID { return c.id }

// DeleteVehicleCommandHandler removes vehicle records.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Returns errs.ErrObjectNotFound
// (wrapped) when the vehicle does not exist.
func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, command DeleteVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VehicleRepository().Delete(ctx, command.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
