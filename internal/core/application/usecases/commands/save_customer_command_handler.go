package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
)

// SaveCustomerCommandHandler persists customer records with create-or-replace
// semantics.
type SaveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSaveCustomerCommandHandler creates a handler for customer persistence.
func NewSaveCustomerCommandHandler(uowFactory CustomerUoWFactory) SaveCustomerCommandHandler {
	return SaveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command and returns the stored customer.
func (h SaveCustomerCommandHandler) Handle(
	ctx context.Context,
	command SaveCustomerCommand,
) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(
		command.ID(),
		command.Name(),
		command.Address(),
		command.Phone(),
		command.Email(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
