package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignShipmentCommandIsNotConstructed = errors.New(
	"AssignShipmentCommand must be created via NewAssignShipmentCommand constructor",
)

// AssignShipmentCommand requests that a pending order be bound to the first
// available driver, creating the shipment that tracks the delivery.
//
// Example:
//
//	cmd, err := NewAssignShipmentCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	shipment, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, ErrNoDriversAvailable):
//	    // no capacity right now
//	}
type AssignShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignShipmentCommand creates a command to assign the given order.
func NewAssignShipmentCommand(orderID kernel.UUID) (AssignShipmentCommand, error) {
	command := AssignShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignShipmentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
