// Package driverrepo persists the driver aggregate and implements the
// storage half of the availability ledger.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a driver. The coordinate columns are
// either both set or both null; vehicle_id is null for drivers without a
// vehicle.
type DriverDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Available   bool       `gorm:"type:boolean;not null;index"`
	LocationLat *float64   `gorm:"type:double precision"`
	LocationLon *float64   `gorm:"type:double precision"`
	VehicleID   *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Available: aggregate.IsAvailable(),
	}

	if aggregate.Location() != nil {
		lat := aggregate.Location().Lat()
		lon := aggregate.Location().Lon()
		dto.LocationLat = &lat
		dto.LocationLon = &lon
	}

	if aggregate.VehicleID() != nil {
		raw := aggregate.VehicleID().Bytes()
		dto.VehicleID = &raw
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLon)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vid, vidErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vidErr != nil {
			return nil, vidErr
		}
		vehicleID = &vid
	}

	return driver.RestoreDriver(id, dto.Name, dto.Available, location, vehicleID)
}
