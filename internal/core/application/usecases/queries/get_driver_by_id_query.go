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

var ErrGetDriverByIDQueryIsNotConstructed = errors.New(
	"GetDriverByIDQuery must be created via NewGetDriverByIDQuery constructor",
)

// GetDriverByIDQuery retrieves a single driver.
type GetDriverByIDQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverByIDQuery creates a query for one driver.
func NewGetDriverByIDQuery(driverID kernel.UUID) (GetDriverByIDQuery, error) {
	query := GetDriverByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return GetDriverByIDQuery{}, err
	}
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverByIDQueryIsNotConstructed)
}

// DriverID returns the requested driver.
func (q GetDriverByIDQuery) DriverID() kernel.UUID { return q.driverID }

// GetDriverByIDQueryHandler reads one driver with direct SQL.
type GetDriverByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverByIDQueryHandler creates a handler for single-driver reads.
func NewGetDriverByIDQueryHandler(db *gorm.DB) GetDriverByIDQueryHandler {
	return GetDriverByIDQueryHandler{db: db}
}

// Handle returns the driver, or errs.ErrObjectNotFound (wrapped) when the id
// is unknown.
func (h GetDriverByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDriverByIDQuery,
) (GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllDriversQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Row()

	d, err := scanDriverRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllDriversQueryResponse{}, errs.NewObjectNotFoundError("driverID", query.DriverID())
	}
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}

	return d, nil
}
