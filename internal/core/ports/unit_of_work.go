package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command, keeping
// concurrent operations isolated from one another.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// an active unit of work operate within its transaction, so a claim on a
// driver row and the shipment insert that depends on it commit or roll back
// as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op for callers that defer it.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a repository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// VehicleRepository returns a repository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a repository bound to the current transaction.
	DriverRepository() DriverRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository

	// ShipmentRepository returns a repository bound to the current transaction.
	ShipmentRepository() ShipmentRepository
}
