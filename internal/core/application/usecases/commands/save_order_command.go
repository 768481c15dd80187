package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// SaveOrderCommand creates or updates an order record on behalf of the order
// intake system. The status string is stored verbatim; the engine never
// interprets it.
type SaveOrderCommand struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	customerID kernel.UUID
	number     string
	status     string

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand creates a command to save an order record.
func NewSaveOrderCommand(id, customerID kernel.UUID, number, status string) (SaveOrderCommand, error) {
	command := SaveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return SaveOrderCommand{}, err
	}
	command.id = id
	command.customerID = customerID
	command.number = number
	command.status = status

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

// ID returns the order identifier.
func (c SaveOrderCommand) ID() kernel.UUID { return c.id }

// CustomerID returns the owning customer's identifier.
func (c SaveOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Number returns the human-facing order number.
func (c SaveOrderCommand) Number() string { return c.number }

// Status returns the order progress string.
func (c SaveOrderCommand) Status() string { return c.status }
