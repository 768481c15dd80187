package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetVehicleByIDQueryIsNotConstructed = errors.New(
	"GetVehicleByIDQuery must be created via NewGetVehicleByIDQuery constructor",
)

// GetVehicleByIDQuery retrieves a single vehicle record.
type GetVehicleByIDQuery struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleByIDQuery creates a query for one vehicle.
func NewGetVehicleByIDQuery(vehicleID kernel.UUID) (GetVehicleByIDQuery, error) {
	query := GetVehicleByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vehicleID.Validate(); err != nil {
		return GetVehicleByIDQuery{}, err
	}
	query.vehicleID = vehicleID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleByIDQueryIsNotConstructed)
}

// VehicleID returns the requested vehicle.
func (q GetVehicleByIDQuery) VehicleID() kernel.UUID { return q.vehicleID }

// GetVehicleByIDQueryHandler reads one vehicle with direct SQL.
type GetVehicleByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleByIDQueryHandler creates a handler for single-vehicle reads.
func NewGetVehicleByIDQueryHandler(db *gorm.DB) GetVehicleByIDQueryHandler {
	return GetVehicleByIDQueryHandler{db: db}
}

// Handle returns the vehicle, or errs.ErrObjectNotFound (wrapped) when the
// id is unknown.
func (h GetVehicleByIDQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleByIDQuery,
) (GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}

	var v GetAllVehiclesQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			kind,
			model,
			brand
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Bytes()).Row()

	err := row.Scan(&id, &v.Plate, &v.Kind, &v.Model, &v.Brand)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllVehiclesQueryResponse{}, errs.NewObjectNotFoundError("vehicleID", query.VehicleID())
	}
	if err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}
	v.ID = vehicleID

	return v, nil
}
