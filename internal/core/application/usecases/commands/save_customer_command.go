package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSaveCustomerCommandIsNotConstructed = errors.New(
	"SaveCustomerCommand must be created via NewSaveCustomerCommand constructor",
)

// SaveCustomerCommand creates or replaces a customer record. The same
// command serves both the create and the update endpoint: the caller supplies
// the id, and an existing record with that id is overwritten.
type SaveCustomerCommand struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	address string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

// NewSaveCustomerCommand creates a command to save a customer record.
func NewSaveCustomerCommand(id kernel.UUID, name, address, phone, email string) (SaveCustomerCommand, error) {
	command := SaveCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return SaveCustomerCommand{}, err
	}
	command.id = id
	command.name = name
	command.address = address
	command.phone = phone
	command.email = email

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

// ID returns the customer identifier.
func (c SaveCustomerCommand) ID() kernel.UUID { return c.id }

// Name returns the customer name.
func (c SaveCustomerCommand) Name() string { return c.name }

// Address returns the customer address.
func (c SaveCustomerCommand) Address() string { return c.address }

// Phone returns the customer phone number.
func (c SaveCustomerCommand) Phone() string { return c.phone }

// Email returns the customer email.
func (c SaveCustomerCommand) Email() string { return c.email }
