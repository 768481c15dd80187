package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// RecordDeliveryCommandHandler completes a shipment: it stamps the delivery
// time, stores the proof tokens, and releases the driver back into the
// available pool. The shipment and driver updates commit atomically, so the
// driver can never be released while the shipment still looks active.
//
// A shipment whose driver was deleted administratively is completed without a
// release; there is nobody left to free.
//
// On success the handler enqueues a push notification for the order's
// customer. Delivery of the notification is best effort and never affects the
// recorded state.
type RecordDeliveryCommandHandler struct {
	uowFactory UoWFactory
	queue      NotificationQueue
}

// NewRecordDeliveryCommandHandler creates a handler for delivery recording.
func NewRecordDeliveryCommandHandler(uowFactory UoWFactory, queue NotificationQueue) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the delivery command and returns the updated shipment.
// Returns errs.ErrObjectNotFound (wrapped) when the shipment does not exist.
func (h RecordDeliveryCommandHandler) Handle(
	ctx context.Context,
	command RecordDeliveryCommand,
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
	orderRepo := uow.OrderRepository()

	s, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.RecordDelivery(command.QRCode(), command.Signature(), time.Now()); err != nil {
		return nil, err
	}

	if s.DriverID() != nil {
		d, err := driverRepo.Get(ctx, *s.DriverID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// Driver deleted after assignment; nothing to release.
		case err != nil:
			return nil, err
		default:
			d.Release()
			if err = driverRepo.Update(ctx, d); err != nil {
				return nil, err
			}
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	// The order lookup feeds the notification text only. A missing order
	// must not block the delivery from being recorded.
	o, orderErr := orderRepo.Get(ctx, s.OrderID())
	if orderErr != nil && !errors.Is(orderErr, errs.ErrObjectNotFound) {
		return nil, orderErr
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if o != nil {
		h.queue.Enqueue(Notification{
			EntityID: o.CustomerID(),
			Title:    "Shipment delivered",
			Body:     fmt.Sprintf("Your shipment for order %s has been delivered.", o.Number()),
		})
	}

	return s, nil
}
