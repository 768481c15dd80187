package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// CustomerRepository is the persistence contract for customer records.
type CustomerRepository interface {
	// Save creates or replaces a customer record.
	Save(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}

// VehicleRepository is the persistence contract for vehicle records.
type VehicleRepository interface {
	// Save creates or replaces a vehicle record.
	Save(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// Delete removes a vehicle. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}

// OrderRepository is the persistence contract for order records.
type OrderRepository interface {
	// Save creates or replaces an order record.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
