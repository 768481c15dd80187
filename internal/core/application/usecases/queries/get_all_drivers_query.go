package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every driver with availability and last
// reported position.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all drivers.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is the driver read model. Location is nil until
// the driver's first position report; VehicleID is nil for drivers without a
// vehicle.
type GetAllDriversQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Available bool
	Location  *kernel.GeoPoint
	VehicleID *kernel.UUID
}

// driverColumns is the select list every driver query shares with
// scanDriverRow.
const driverColumns = `
	id,
	name,
	available,
	location_lat,
	location_lon,
	vehicle_id
`

// scanDriverRow maps one driver row onto the read model. The two nullable
// coordinate columns are either both set or both null.
func scanDriverRow(scan func(dest ...any) error) (GetAllDriversQueryResponse, error) {
	var d GetAllDriversQueryResponse
	var id uuid.UUID
	var lat, lon sql.NullFloat64
	var vehicleID uuid.NullUUID

	if err := scan(&id, &d.Name, &d.Available, &lat, &lon, &vehicleID); err != nil {
		return GetAllDriversQueryResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}
	d.ID = driverID

	if lat.Valid && lon.Valid {
		point, err := kernel.NewGeoPoint(lat.Float64, lon.Float64)
		if err != nil {
			return GetAllDriversQueryResponse{}, err
		}
		d.Location = &point
	}

	if vehicleID.Valid {
		vid, err := kernel.UUIDFromBytes(vehicleID.UUID[:])
		if err != nil {
			return GetAllDriversQueryResponse{}, err
		}
		d.VehicleID = &vid
	}

	return d, nil
}

// GetAllDriversQueryHandler reads drivers with direct SQL.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver listing.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle returns all drivers ordered by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + driverColumns + `
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d, scanErr := scanDriverRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
