package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand removes a shipment record. This is an administrative
// escape hatch, not part of the delivery lifecycle: deleting an active
// shipment does not release its driver. The stranded driver audit reports
// drivers left booked with no shipment to show for it.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
func NewDeleteShipmentCommand(id kernel.UUID) (DeleteShipmentCommand, error) {
	command := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return DeleteShipmentCommand{}, err
	}
	command.id = id

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ID returns the shipment to delete.
func (c DeleteShipmentCommand) ID() kernel.UUID { return c.id }

// DeleteShipmentCommandHandler removes shipment records.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Returns errs.ErrObjectNotFound
// (wrapped) when the shipment does not exist.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, command DeleteShipmentCommand) error {
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

	if err := uow.ShipmentRepository().Delete(ctx, command.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
