// Package driver contains the Driver aggregate and the domain half of the
// availability ledger: the claim/release transitions of the available flag.
//
// The flag is mutated only through Claim and Release, which are invoked by
// the assignment and delivery workflows. Client-facing driver updates go
// through SetProfile/SetVehicle and can never touch availability, so the
// invariant "available ⇔ no active shipment" is owned by the engine alone.
package driver

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created via NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverNotAvailable is returned by Claim when the driver already has
	// an active shipment.
	ErrDriverNotAvailable = errors.New("driver is not available")
)

// Driver represents a delivery driver.
//
// Key state:
//   - available: true when the driver has no active (non-terminal) shipment
//   - location: last reported position, nil until the first report
//   - vehicleID: the currently assigned vehicle, nil when the driver has none
type Driver struct {
	id        kernel.UUID
	name      string
	available bool
	location  *kernel.GeoPoint
	vehicleID *kernel.UUID

	isConstructed bool
}

// NewDriver creates a Driver with no reported location. New drivers start
// available: they have no shipments yet.
func NewDriver(id kernel.UUID, name string, vehicleID *kernel.UUID) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Driver{
		id:            id,
		name:          name,
		available:     true,
		vehicleID:     vehicleID,
		isConstructed: true,
	}, nil
}

// RestoreDriver reconstructs a Driver from persistence with its full state,
// including the availability flag and the last reported location.
func RestoreDriver(
	id kernel.UUID,
	name string,
	available bool,
	location *kernel.GeoPoint,
	vehicleID *kernel.UUID,
) (*Driver, error) {
	d, err := NewDriver(id, name, vehicleID)
	if err != nil {
		return nil, err
	}
	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
	}
	d.available = available
	d.location = location
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver name.
func (d *Driver) Name() string { return d.name }

// IsAvailable reports whether the driver can take a new shipment.
func (d *Driver) IsAvailable() bool { return d.available }

// Location returns the last reported position, nil if none was reported.
func (d *Driver) Location() *kernel.GeoPoint { return d.location }

// VehicleID returns the assigned vehicle's identifier, nil if none.
func (d *Driver) VehicleID() *kernel.UUID { return d.vehicleID }

// Claim marks the driver as booked for a shipment. Returns
// ErrDriverNotAvailable if the driver already has an active shipment.
func (d *Driver) Claim() error {
	if !d.available {
		return ErrDriverNotAvailable
	}
	d.available = false
	return nil
}

// Release marks the driver as available again after its shipment reaches a
// terminal state. Releasing an already-available driver is a no-op.
func (d *Driver) Release() {
	d.available = true
}

// MoveTo records a new reported position for the driver.
func (d *Driver) MoveTo(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	d.location = &point
	return nil
}

// SetProfile updates the client-editable profile fields. Availability is
// deliberately out of reach here.
func (d *Driver) SetProfile(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

// SetVehicle assigns or clears the driver's vehicle. Shipments already
// created keep their own point-in-time vehicle copy.
func (d *Driver) SetVehicle(vehicleID *kernel.UUID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}
	d.vehicleID = vehicleID
	return nil
}
