package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// SaveOrderCommandHandler persists order records. A new id creates an order
// stamped with the current time; saving an existing id keeps the original
// creation timestamp and the delivery estimate set by the assignment
// workflow.
type SaveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSaveOrderCommandHandler creates a handler for order persistence.
func NewSaveOrderCommandHandler(uowFactory OrderUoWFactory) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command and returns the stored order.
func (h SaveOrderCommandHandler) Handle(ctx context.Context, command SaveOrderCommand) (*order.Order, error) {
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

	createdAt := time.Now()
	var estimatedDeliveryTime *time.Time

	existing, err := orderRepo.Get(ctx, command.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return nil, err
	default:
		createdAt = existing.CreatedAt()
		estimatedDeliveryTime = existing.EstimatedDeliveryTime()
	}

	o, err := order.RestoreOrder(
		command.ID(),
		command.CustomerID(),
		command.Number(),
		command.Status(),
		createdAt,
		estimatedDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
