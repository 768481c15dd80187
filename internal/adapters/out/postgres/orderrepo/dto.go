// Package orderrepo persists the order aggregate.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Number                string     `gorm:"type:varchar(64);not null"`
	Status                string     `gorm:"type:varchar(64)"`
	CreatedAt             time.Time  `gorm:"type:timestamptz;not null"`
	EstimatedDeliveryTime *time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		Number:                aggregate.Number(),
		Status:                aggregate.Status(),
		CreatedAt:             aggregate.CreatedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.Number, dto.Status, dto.CreatedAt, dto.EstimatedDeliveryTime)
}
