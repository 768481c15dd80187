package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves a single shipment.
type GetShipmentByIDQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query for one shipment.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	query := GetShipmentByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentID.Validate(); err != nil {
		return GetShipmentByIDQuery{}, err
	}
	query.shipmentID = shipmentID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// GetShipmentByIDQueryHandler reads one shipment with direct SQL.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for single-shipment reads.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle returns the shipment, or errs.ErrObjectNotFound (wrapped) when the
// id is unknown.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	s, err := scanShipmentRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllShipmentsQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}

	return s, nil
}
