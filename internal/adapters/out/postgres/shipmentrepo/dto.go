// Package shipmentrepo persists the shipment aggregate.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the database row for a shipment. Status is stored as its
// string form; driver_id goes null when the driver is deleted.
type ShipmentDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID              *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID             *uuid.UUID `gorm:"type:uuid"`
	Status                string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt             time.Time  `gorm:"type:timestamptz;not null"`
	EstimatedDeliveryTime time.Time  `gorm:"type:timestamptz;not null"`
	ActualDeliveryTime    *time.Time `gorm:"type:timestamptz"`
	OriginLat             *float64   `gorm:"type:double precision"`
	OriginLon             *float64   `gorm:"type:double precision"`
	DestinationLat        *float64   `gorm:"type:double precision"`
	DestinationLon        *float64   `gorm:"type:double precision"`
	QRCode                string     `gorm:"column:qr_code;type:text"`
	Signature             string     `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func geoToColumns(point *kernel.GeoPoint) (*float64, *float64) {
	if point == nil {
		return nil, nil
	}
	lat := point.Lat()
	lon := point.Lon()
	return &lat, &lon
}

func geoFromColumns(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func uuidToColumn(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func uuidFromColumn(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	originLat, originLon := geoToColumns(aggregate.Origin())
	destinationLat, destinationLon := geoToColumns(aggregate.Destination())

	return ShipmentDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		DriverID:              uuidToColumn(aggregate.DriverID()),
		VehicleID:             uuidToColumn(aggregate.VehicleID()),
		Status:                aggregate.Status().String(),
		CreatedAt:             aggregate.CreatedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		OriginLat:             originLat,
		OriginLon:             originLon,
		DestinationLat:        destinationLat,
		DestinationLon:        destinationLon,
		QRCode:                aggregate.QRCode(),
		Signature:             aggregate.Signature(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := uuidFromColumn(dto.DriverID)
	if err != nil {
		return nil, err
	}

	vehicleID, err := uuidFromColumn(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	origin, err := geoFromColumns(dto.OriginLat, dto.OriginLon)
	if err != nil {
		return nil, err
	}

	destination, err := geoFromColumns(dto.DestinationLat, dto.DestinationLon)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, orderID,
		driverID, vehicleID,
		status,
		dto.CreatedAt, dto.EstimatedDeliveryTime, dto.ActualDeliveryTime,
		origin, destination,
		dto.QRCode, dto.Signature,
	)
}
