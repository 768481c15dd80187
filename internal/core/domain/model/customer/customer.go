// Package customer contains the Customer aggregate: the party that places
// orders and receives delivery notifications.
package customer

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when using a Customer that was
	// not created via NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is a plain record aggregate. Orders reference a customer by its
// identifier; the customer never references its orders (back-lookup is done
// by foreign key in the order store).
type Customer struct {
	id      kernel.UUID
	name    string
	address string
	phone   string
	email   string

	isConstructed bool
}

// NewCustomer creates a Customer, requiring a valid id and a non-empty name.
// Address, phone and email are optional contact details stored verbatim.
func NewCustomer(id kernel.UUID, name, address, phone, email string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Customer{
		id:            id,
		name:          name,
		address:       address,
		phone:         phone,
		email:         email,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name, address, phone, email string) (*Customer, error) {
	return NewCustomer(id, name, address, phone, email)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Address returns the customer address.
func (c *Customer) Address() string { return c.address }

// Phone returns the customer phone number.
func (c *Customer) Phone() string { return c.phone }

// Email returns the customer email.
func (c *Customer) Email() string { return c.email }
