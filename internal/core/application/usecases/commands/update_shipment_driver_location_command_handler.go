package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// UpdateShipmentDriverLocationCommandHandler resolves a shipment-addressed
// position report to the shipment's assigned driver and records it there.
// When the shipment has no driver left (administrative deletion) the report
// is accepted and discarded: there is nobody whose position it could be.
type UpdateShipmentDriverLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateShipmentDriverLocationCommandHandler creates a handler for
// shipment-addressed location updates.
func NewUpdateShipmentDriverLocationCommandHandler(
	uowFactory UoWFactory,
) UpdateShipmentDriverLocationCommandHandler {
	return UpdateShipmentDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report and returns the shipment it was addressed to.
// Returns errs.ErrObjectNotFound (wrapped) when the shipment does not exist.
func (h UpdateShipmentDriverLocationCommandHandler) Handle(
	ctx context.Context,
	command UpdateShipmentDriverLocationCommand,
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

	shipmentRepo := uow.ShipmentRepository()
	driverRepo := uow.DriverRepository()

	s, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	if s.DriverID() == nil {
		return s, nil
	}

	d, err := driverRepo.Get(ctx, *s.DriverID())
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

	return s, nil
}
