package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// ErrNoDriversAvailable reports that every driver is currently claimed by an
// active shipment. The order itself is untouched and can be retried.
var ErrNoDriversAvailable = errors.New("no drivers available")

// AssignShipmentCommandHandler orchestrates the assignment workflow: it loads
// the order, claims the first available driver, and persists the resulting
// shipment, all within a single transaction. The driver row stays locked from
// claim to commit, so two concurrent assignments can never win the same
// driver.
//
// On success the handler enqueues a push notification for the assigned driver.
// Notification delivery is best effort and happens after commit; it never
// affects the outcome of the assignment.
type AssignShipmentCommandHandler struct {
	uowFactory UoWFactory
	queue      NotificationQueue
}

// NewAssignShipmentCommandHandler creates a handler for shipment assignment.
func NewAssignShipmentCommandHandler(uowFactory UoWFactory, queue NotificationQueue) AssignShipmentCommandHandler {
	return AssignShipmentCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the assignment command and returns the created shipment.
// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist and
// ErrNoDriversAvailable when the driver pool is exhausted.
func (h AssignShipmentCommandHandler) Handle(
	ctx context.Context,
	command AssignShipmentCommand,
) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	shipmentRepo := uow.ShipmentRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	d, err := driverRepo.ClaimFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoDriversAvailable
	}
	if err != nil {
		return nil, err
	}

	s, err := services.NewShipmentPlanner().Plan(o, d, time.Now())
	if err != nil {
		return nil, err
	}

	// The driver's availability flip must land before the shipment that
	// claimed it.
	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.queue.Enqueue(Notification{
		EntityID: d.ID(),
		Title:    "New shipment assigned",
		Body:     fmt.Sprintf("You have been assigned the shipment for order %s.", o.Number()),
	})

	return s, nil
}
