package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// SaveVehicleCommandHandler persists vehicle records with create-or-replace
// semantics.
type SaveVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewSaveVehicleCommandHandler creates a handler for vehicle persistence.
func NewSaveVehicleCommandHandler(uowFactory VehicleUoWFactory) SaveVehicleCommandHandler {
	return SaveVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command and returns the stored vehicle.
func (h SaveVehicleCommandHandler) Handle(
	ctx context.Context,
	command SaveVehicleCommand,
) (*vehicle.Vehicle, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(
		command.ID(),
		command.Plate(),
		command.Kind(),
		command.Model(),
		command.Brand(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Save(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
