// Package vehicle contains the Vehicle aggregate. Vehicles are referenced by
// drivers and, as a point-in-time copy, by shipments at assignment.
package vehicle

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when using a Vehicle that was
	// not created via NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
)

// Vehicle is a plain record aggregate identifying a delivery vehicle.
type Vehicle struct {
	id    kernel.UUID
	plate string
	kind  string
	model string
	brand string

	isConstructed bool
}

// NewVehicle creates a Vehicle, requiring a valid id and a non-empty plate.
func NewVehicle(id kernel.UUID, plate, kind, model, brand string) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if plate == "" {
		return nil, ErrPlateIsRequired
	}

	return &Vehicle{
		id:            id,
		plate:         plate,
		kind:          kind,
		model:         model,
		brand:         brand,
		isConstructed: true,
	}, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(id kernel.UUID, plate, kind, model, brand string) (*Vehicle, error) {
	return NewVehicle(id, plate, kind, model, brand)
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// Plate returns the registration plate.
func (v *Vehicle) Plate() string { return v.plate }

// Kind returns the vehicle type (van, truck, motorcycle, ...).
func (v *Vehicle) Kind() string { return v.kind }

// Model returns the vehicle model.
func (v *Vehicle) Model() string { return v.model }

// Brand returns the vehicle brand.
func (v *Vehicle) Brand() string { return v.brand }
