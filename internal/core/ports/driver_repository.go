// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the outbound
// notification collaborators.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository is the persistence contract for driver aggregates and the
// storage half of the availability ledger.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes a driver. Shipments referencing the driver keep running
	// with a nil driver reference. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClaimFirstAvailable locks and returns the first available driver in id
	// order. The returned driver's row stays locked until the enclosing
	// transaction ends, so two concurrent claims can never observe the same
	// driver; the caller flips the flag via driver.Claim and Update before
	// committing. Returns errs.ErrObjectNotFound when no driver is available.
	//
	// Implementations must skip rows locked by concurrent claims instead of
	// blocking on them, so parallel assignments drain the pool rather than
	// queueing up behind one row.
	ClaimFirstAvailable(ctx context.Context) (*driver.Driver, error)
}
