package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateShipmentDriverLocationCommand must be created via NewUpdateShipmentDriverLocationCommand constructor",
)

// UpdateShipmentDriverLocationCommand records a position report addressed to
// a shipment rather than a driver. The handler resolves the shipment's
// assigned driver and moves that driver; the shipment row itself carries no
// position.
type UpdateShipmentDriverLocationCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateShipmentDriverLocationCommand creates a shipment-addressed
// location update command.
func NewUpdateShipmentDriverLocationCommand(
	shipmentID kernel.UUID,
	location kernel.GeoPoint,
) (UpdateShipmentDriverLocationCommand, error) {
	command := UpdateShipmentDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(shipmentID.Validate(), location.Validate()); err != nil {
		return UpdateShipmentDriverLocationCommand{}, err
	}
	command.shipmentID = shipmentID
	command.location = location

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentDriverLocationCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose driver reported the position.
func (c UpdateShipmentDriverLocationCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Location returns the reported position.
func (c UpdateShipmentDriverLocationCommand) Location() kernel.GeoPoint { return c.location }
