// Package shipment contains the Shipment aggregate: the unit of work that
// tracks movement of one order from pickup to delivery.
//
// Shipments are created only by the assignment workflow, never directly by
// clients. The assigned driver and the vehicle copy are immutable once set;
// the vehicle is a point-in-time snapshot taken from the driver at
// assignment and is not re-synced if the driver later changes vehicles.
package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

var (
	// ErrShipmentIsNotConstructed is returned when using a Shipment that was
	// not created via NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment tracks a single order's delivery.
//
// Invariants:
//   - driverID and vehicleID never change after construction
//   - actualDeliveryTime, qrCode and signature are written together, only by
//     RecordDelivery
type Shipment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	status                Status
	createdAt             time.Time
	estimatedDeliveryTime time.Time
	actualDeliveryTime    *time.Time

	origin      *kernel.GeoPoint
	destination *kernel.GeoPoint

	// Proof of delivery, stored opaquely.
	qrCode    string
	signature string

	isConstructed bool
}

// NewShipment creates a Shipment at assignment time in PendingPickup status.
// vehicleID is the snapshot of the driver's vehicle and may be nil when the
// driver has none.
func NewShipment(
	id, orderID, driverID kernel.UUID,
	vehicleID *kernel.UUID,
	createdAt, estimatedDeliveryTime time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shipment{
		id:                    id,
		orderID:               orderID,
		driverID:              &driverID,
		vehicleID:             vehicleID,
		status:                PendingPickup,
		createdAt:             createdAt,
		estimatedDeliveryTime: estimatedDeliveryTime,
		isConstructed:         true,
	}, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Unlike
// NewShipment, the driver reference may be nil: administrative driver
// deletion leaves the shipment behind without one.
func RestoreShipment(
	id, orderID kernel.UUID,
	driverID, vehicleID *kernel.UUID,
	status Status,
	createdAt, estimatedDeliveryTime time.Time,
	actualDeliveryTime *time.Time,
	origin, destination *kernel.GeoPoint,
	qrCode, signature string,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shipment{
		id:                    id,
		orderID:               orderID,
		driverID:              driverID,
		vehicleID:             vehicleID,
		status:                status,
		createdAt:             createdAt,
		estimatedDeliveryTime: estimatedDeliveryTime,
		actualDeliveryTime:    actualDeliveryTime,
		origin:                origin,
		destination:           destination,
		qrCode:                qrCode,
		signature:             signature,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the originating order's identifier.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// DriverID returns the assigned driver's identifier, nil if none remains.
func (s *Shipment) DriverID() *kernel.UUID { return s.driverID }

// VehicleID returns the vehicle snapshot taken at assignment, nil if the
// driver had no vehicle.
func (s *Shipment) VehicleID() *kernel.UUID { return s.vehicleID }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// CreatedAt returns the shipment creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// EstimatedDeliveryTime returns the delivery estimate set at assignment.
func (s *Shipment) EstimatedDeliveryTime() time.Time { return s.estimatedDeliveryTime }

// ActualDeliveryTime returns the recorded delivery time, nil until delivered.
func (s *Shipment) ActualDeliveryTime() *time.Time { return s.actualDeliveryTime }

// Origin returns the pickup coordinates, nil when not recorded.
func (s *Shipment) Origin() *kernel.GeoPoint { return s.origin }

// Destination returns the drop-off coordinates, nil when not recorded.
func (s *Shipment) Destination() *kernel.GeoPoint { return s.destination }

// QRCode returns the delivery QR proof token, empty until delivered.
func (s *Shipment) QRCode() string { return s.qrCode }

// Signature returns the digital signature proof token, empty until delivered.
func (s *Shipment) Signature() string { return s.signature }

// SetRoute records the pickup and drop-off coordinates.
func (s *Shipment) SetRoute(origin, destination kernel.GeoPoint) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	s.origin = &origin
	s.destination = &destination
	return nil
}

// RecordDelivery transitions the shipment to Delivered, stamping the actual
// delivery time and storing the proof tokens verbatim. The tokens are opaque
// and not validated. Calling RecordDelivery on an already-delivered shipment
// overwrites the previous proof and timestamp.
func (s *Shipment) RecordDelivery(qrCode, signature string, at time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.actualDeliveryTime = &at
	s.qrCode = qrCode
	s.signature = signature
	return nil
}
