package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSaveVehicleCommandIsNotConstructed = errors.New(
	"SaveVehicleCommand must be created via NewSaveVehicleCommand constructor",
)

// SaveVehicleCommand creates or replaces a vehicle record.
type SaveVehicleCommand struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	plate string
	kind  string
	model string
	brand string

	guard guard.ConstructorGuard
}

// NewSaveVehicleCommand creates a command to save a vehicle record.
func NewSaveVehicleCommand(id kernel.UUID, plate, kind, model, brand string) (SaveVehicleCommand, error) {
	command := SaveVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return SaveVehicleCommand{}, err
	}
	command.id = id
	command.plate = plate
	command.kind = kind
	command.model = model
	command.brand = brand

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveVehicleCommand) Validate() error {
	return c.guard.Validate(ErrSaveVehicleCommandIsNotConstructed)
}

// ID returns the vehicle identifier.
func (c SaveVehicleCommand) ID() kernel.UUID { return c.id }

// Plate returns the registration plate.
func (c SaveVehicleCommand) Plate() string { return c.plate }

// Kind returns the vehicle type.
func (c SaveVehicleCommand) Kind() string { return c.kind }

// Model returns the vehicle model.
func (c SaveVehicleCommand) Model() string { return c.model }

// Brand returns the vehicle brand.
func (c SaveVehicleCommand) Brand() string { return c.brand }
