package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSaveDriverCommandIsNotConstructed = errors.New(
	"SaveDriverCommand must be created via NewSaveDriverCommand constructor",
)

// SaveDriverCommand creates or updates a driver's client-editable fields:
// name and vehicle. The availability flag is not part of the command at all;
// it belongs to the assignment and delivery workflows.
type SaveDriverCommand struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	name      string
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveDriverCommand creates a command to save a driver. vehicleID may be
// nil for a driver without a vehicle.
func NewSaveDriverCommand(id kernel.UUID, name string, vehicleID *kernel.UUID) (SaveDriverCommand, error) {
	command := SaveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return SaveDriverCommand{}, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return SaveDriverCommand{}, err
		}
	}
	command.id = id
	command.name = name
	command.vehicleID = vehicleID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDriverCommand) Validate() error {
	return c.guard.Validate(ErrSaveDriverCommandIsNotConstructed)
}

// ID returns the driver identifier.
func (c SaveDriverCommand) ID() kernel.UUID { return c.id }

// Name returns the driver name.
func (c SaveDriverCommand) Name() string { return c.name }

// VehicleID returns the driver's vehicle, nil if none.
func (c SaveDriverCommand) VehicleID() *kernel.UUID { return c.vehicleID }
