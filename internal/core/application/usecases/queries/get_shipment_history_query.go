package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// ErrInvalidTimeRange is returned when the range's lower bound is after its
// upper bound.
var ErrInvalidTimeRange = errs.NewValueIsInvalidError("from/to")

// GetShipmentHistoryQuery retrieves past and current shipments filtered by
// any combination of driver, customer, and creation time range. All filters
// are optional; an unfiltered query is the full shipment log.
type GetShipmentHistoryQuery struct { //nolint:recvcheck //using for validation
	driverID   *kernel.UUID
	customerID *kernel.UUID
	from       *time.Time
	to         *time.Time

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a history query. Nil arguments disable
// the corresponding filter.
func NewGetShipmentHistoryQuery(
	driverID, customerID *kernel.UUID,
	from, to *time.Time,
) (GetShipmentHistoryQuery, error) {
	query := GetShipmentHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetShipmentHistoryQuery{}, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetShipmentHistoryQuery{}, err
		}
	}
	if from != nil && to != nil && from.After(*to) {
		return GetShipmentHistoryQuery{}, ErrInvalidTimeRange
	}
	query.driverID = driverID
	query.customerID = customerID
	query.from = from
	query.to = to

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// DriverID returns the driver filter, nil when disabled.
func (q GetShipmentHistoryQuery) DriverID() *kernel.UUID { return q.driverID }

// CustomerID returns the customer filter, nil when disabled.
func (q GetShipmentHistoryQuery) CustomerID() *kernel.UUID { return q.customerID }

// From returns the inclusive lower creation-time bound, nil when disabled.
func (q GetShipmentHistoryQuery) From() *time.Time { return q.from }

// To returns the inclusive upper creation-time bound, nil when disabled.
func (q GetShipmentHistoryQuery) To() *time.Time { return q.to }

// GetShipmentHistoryQueryHandler reads the shipment log with direct SQL. The
// customer filter joins through orders: shipments carry no customer id of
// their own.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for history queries.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle returns the matching shipments, newest first.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	args := make([]any, 0, 4)

	sb.WriteString(`
		SELECT
			s.id,
			s.order_id,
			s.driver_id,
			s.vehicle_id,
			s.status,
			s.created_at,
			s.estimated_delivery_time,
			s.actual_delivery_time,
			s.origin_lat,
			s.origin_lon,
			s.destination_lat,
			s.destination_lon,
			s.qr_code,
			s.signature
		FROM shipments s
	`)

	if query.CustomerID() != nil {
		sb.WriteString(" JOIN orders o ON o.id = s.order_id")
	}

	sb.WriteString(" WHERE 1=1")

	if query.DriverID() != nil {
		sb.WriteString(" AND s.driver_id = ?")
		args = append(args, query.DriverID().Bytes())
	}
	if query.CustomerID() != nil {
		sb.WriteString(" AND o.customer_id = ?")
		args = append(args, query.CustomerID().Bytes())
	}
	if query.From() != nil {
		sb.WriteString(" AND s.created_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sb.WriteString(" AND s.created_at <= ?")
		args = append(args, *query.To())
	}

	sb.WriteString(" ORDER BY s.created_at DESC")

	shipments := make([]GetAllShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		s, scanErr := scanShipmentRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
