package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository is the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment created by the assignment workflow.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment (administrative use only).
	// Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
