package queries

import (
	"context"
	"errors"

	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetStrandedDriversQueryIsNotConstructed = errors.New(
	"GetStrandedDriversQuery must be created via NewGetStrandedDriversQuery constructor",
)

// GetStrandedDriversQuery finds drivers marked unavailable although no
// active shipment references them. Such rows appear when an active shipment
// is deleted administratively, or after a crash between the shipment update
// and the driver release. The audit job runs this query and logs the result;
// repair is a manual decision.
type GetStrandedDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStrandedDriversQuery creates a stranded-driver audit query.
func NewGetStrandedDriversQuery() GetStrandedDriversQuery {
	return GetStrandedDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStrandedDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetStrandedDriversQueryIsNotConstructed)
}

// GetStrandedDriversQueryHandler reads stranded drivers with direct SQL.
type GetStrandedDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetStrandedDriversQueryHandler creates a handler for the audit query.
func NewGetStrandedDriversQueryHandler(db *gorm.DB) GetStrandedDriversQueryHandler {
	return GetStrandedDriversQueryHandler{db: db}
}

// Handle returns unavailable drivers with no pending shipment, in id order.
func (h GetStrandedDriversQueryHandler) Handle(
	ctx context.Context,
	query GetStrandedDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + driverColumns + `
		FROM drivers d
		WHERE NOT d.available
		  AND NOT EXISTS (
			SELECT 1
			FROM shipments s
			WHERE s.driver_id = d.id
			  AND s.status = 'pending-pickup'
		  )
		ORDER BY d.id
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
