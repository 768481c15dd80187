package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"
)

// SaveDriverCommandHandler persists drivers. A new id creates a driver that
// starts available; an existing id updates the profile fields only. The
// availability flag and last reported location always survive a save, so a
// profile edit can never sneak a busy driver back into the pool.
type SaveDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSaveDriverCommandHandler creates a handler for driver persistence.
func NewSaveDriverCommandHandler(uowFactory DriverUoWFactory) SaveDriverCommandHandler {
	return SaveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command and returns the stored driver.
func (h SaveDriverCommandHandler) Handle(
	ctx context.Context,
	command SaveDriverCommand,
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

	d, err := driverRepo.Get(ctx, command.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		d, err = driver.NewDriver(command.ID(), command.Name(), command.VehicleID())
		if err != nil {
			return nil, err
		}
		if err = driverRepo.Add(ctx, d); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = d.SetProfile(command.Name()); err != nil {
			return nil, err
		}
		if err = d.SetVehicle(command.VehicleID()); err != nil {
			return nil, err
		}
		if err = driverRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
