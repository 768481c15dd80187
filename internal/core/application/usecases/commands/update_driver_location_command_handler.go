package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
)

// UpdateDriverLocationCommandHandler applies a direct position report to a
// driver. Location updates touch nothing but the driver's last reported
// position; availability and shipments are out of reach.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for direct driver
// location updates.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update and returns the updated driver.
// Returns errs.ErrObjectNotFound (wrapped) when the driver does not exist.
func (h UpdateDriverLocationCommandHandler) Handle(
	ctx context.Context,
	command UpdateDriverLocationCommand,
) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = d.MoveTo(command.Location()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
