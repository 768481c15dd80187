package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// GetAllShipmentsQueryResponse is the shipment read model. Nil pointers mean
// the value was never recorded (position, proof timestamps) or the reference
// was severed (driver deletion).
type GetAllShipmentsQueryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	DriverID              *kernel.UUID
	VehicleID             *kernel.UUID
	Status                string
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	Origin                *kernel.GeoPoint
	Destination           *kernel.GeoPoint
	QRCode                string
	Signature             string
}

const shipmentColumns = `
	id,
	order_id,
	driver_id,
	vehicle_id,
	status,
	created_at,
	estimated_delivery_time,
	actual_delivery_time,
	origin_lat,
	origin_lon,
	destination_lat,
	destination_lon,
	qr_code,
	signature
`

func scanShipmentRow(scan func(dest ...any) error) (GetAllShipmentsQueryResponse, error) {
	var s GetAllShipmentsQueryResponse
	var id, orderID uuid.UUID
	var driverID, vehicleID uuid.NullUUID
	var actualDeliveryTime sql.NullTime
	var originLat, originLon, destinationLat, destinationLon sql.NullFloat64

	err := scan(
		&id, &orderID, &driverID, &vehicleID,
		&s.Status, &s.CreatedAt, &s.EstimatedDeliveryTime, &actualDeliveryTime,
		&originLat, &originLon, &destinationLat, &destinationLon,
		&s.QRCode, &s.Signature,
	)
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}
	s.ID = shipmentID

	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}
	s.OrderID = oid

	if driverID.Valid {
		did, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetAllShipmentsQueryResponse{}, idErr
		}
		s.DriverID = &did
	}

	if vehicleID.Valid {
		vid, idErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if idErr != nil {
			return GetAllShipmentsQueryResponse{}, idErr
		}
		s.VehicleID = &vid
	}

	if actualDeliveryTime.Valid {
		t := actualDeliveryTime.Time
		s.ActualDeliveryTime = &t
	}

	if originLat.Valid && originLon.Valid {
		point, pointErr := kernel.NewGeoPoint(originLat.Float64, originLon.Float64)
		if pointErr != nil {
			return GetAllShipmentsQueryResponse{}, pointErr
		}
		s.Origin = &point
	}

	if destinationLat.Valid && destinationLon.Valid {
		point, pointErr := kernel.NewGeoPoint(destinationLat.Float64, destinationLon.Float64)
		if pointErr != nil {
			return GetAllShipmentsQueryResponse{}, pointErr
		}
		s.Destination = &point
	}

	return s, nil
}

// GetAllShipmentsQueryHandler reads shipments with direct SQL.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment listing.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle returns all shipments, newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetAllShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC
	`).Rows()
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
