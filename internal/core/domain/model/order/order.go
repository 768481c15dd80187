// Package order contains the Order aggregate: the unit of demand that a
// shipment fulfills. Orders are plain records owned by exactly one customer
// for their whole lifetime; shipments reference orders by id.
package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNumberIsRequired is returned when attempting to create an order without a number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
)

// Order represents a customer order awaiting or undergoing delivery.
//
// Invariants:
//   - An order belongs to exactly one customer; the customer id is set at
//     construction and never changes.
//   - The status is a free-form progress string owned by upstream order
//     intake; the delivery engine never interprets it.
type Order struct {
	id                    kernel.UUID
	customerID            kernel.UUID
	number                string
	status                string
	createdAt             time.Time
	estimatedDeliveryTime *time.Time

	isConstructed bool
}

// NewOrder creates an Order for the given customer. The order number is the
// human-facing reference used in notifications and must not be empty.
func NewOrder(id, customerID kernel.UUID, number, status string, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, ErrNumberIsRequired
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		number:        number,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, including the
// optional estimated delivery time.
func RestoreOrder(
	id, customerID kernel.UUID,
	number, status string,
	createdAt time.Time,
	estimatedDeliveryTime *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, number, status, createdAt)
	if err != nil {
		return nil, err
	}
	o.estimatedDeliveryTime = estimatedDeliveryTime
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }

// Status returns the order progress string.
func (o *Order) Status() string { return o.status }

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// EstimatedDeliveryTime returns the expected delivery time, nil when unset.
func (o *Order) EstimatedDeliveryTime() *time.Time { return o.estimatedDeliveryTime }

// SetStatus updates the order progress string.
func (o *Order) SetStatus(status string) {
	o.status = status
}

// SetEstimatedDeliveryTime updates the expected delivery time.
func (o *Order) SetEstimatedDeliveryTime(t time.Time) {
	o.estimatedDeliveryTime = &t
}
