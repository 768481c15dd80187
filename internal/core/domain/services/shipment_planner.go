// Package services contains stateless domain services coordinating multiple
// aggregates.
package services

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

// DefaultDeliveryWindow is the estimated time from assignment to delivery.
const DefaultDeliveryWindow = 3 * time.Hour

// ShipmentPlanner is the domain service that binds an order to a claimed
// driver, producing the shipment that tracks the delivery.
//
// Selection policy note: the planner does not rank drivers. Which driver it
// receives is decided by the availability ledger (first available in store
// order); no proximity matching or load balancing is applied. That
// simplicity is a deliberate design decision, not an omission.
type ShipmentPlanner struct{}

// NewShipmentPlanner creates a ShipmentPlanner.
func NewShipmentPlanner() ShipmentPlanner {
	return ShipmentPlanner{}
}

// Plan claims the driver for the order and builds the resulting shipment:
// status pending-pickup, estimated delivery now + DefaultDeliveryWindow, and
// a point-in-time copy of the driver's vehicle. The vehicle snapshot is
// never re-synced if the driver later changes vehicles.
//
// Plan mutates the driver (availability flip) but not the order; the caller
// persists both the driver and the new shipment, in that order, within one
// transaction.
func (p ShipmentPlanner) Plan(o *order.Order, d *driver.Driver, now time.Time) (*shipment.Shipment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := d.Claim(); err != nil {
		return nil, err
	}

	var vehicleSnapshot *kernel.UUID
	if d.VehicleID() != nil {
		id := *d.VehicleID()
		vehicleSnapshot = &id
	}

	return shipment.NewShipment(
		kernel.NewUUID(),
		o.ID(),
		d.ID(),
		vehicleSnapshot,
		now,
		now.Add(DefaultDeliveryWindow),
	)
}
