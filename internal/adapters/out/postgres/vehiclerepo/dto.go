// Package vehiclerepo persists the vehicle aggregate.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the database row for a vehicle.
type VehicleDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate string    `gorm:"type:varchar(32);not null"`
	Kind  string    `gorm:"type:varchar(64)"`
	Model string    `gorm:"type:varchar(128)"`
	Brand string    `gorm:"type:varchar(128)"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:    aggregate.ID().Bytes(),
		Plate: aggregate.Plate(),
		Kind:  aggregate.Kind(),
		Model: aggregate.Model(),
		Brand: aggregate.Brand(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Plate, dto.Kind, dto.Model, dto.Brand)
}
