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

var ErrGetCustomerByIDQueryIsNotConstructed = errors.New(
	"GetCustomerByIDQuery must be created via NewGetCustomerByIDQuery constructor",
)

// GetCustomerByIDQuery retrieves a single customer record.
type GetCustomerByIDQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerByIDQuery creates a query for one customer.
func NewGetCustomerByIDQuery(customerID kernel.UUID) (GetCustomerByIDQuery, error) {
	query := GetCustomerByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetCustomerByIDQuery{}, err
	}
	query.customerID = customerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByIDQueryIsNotConstructed)
}

// CustomerID returns the requested customer.
func (q GetCustomerByIDQuery) CustomerID() kernel.UUID { return q.customerID }

// GetCustomerByIDQueryHandler reads one customer with direct SQL.
type GetCustomerByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerByIDQueryHandler creates a handler for single-customer reads.
func NewGetCustomerByIDQueryHandler(db *gorm.DB) GetCustomerByIDQueryHandler {
	return GetCustomerByIDQueryHandler{db: db}
}

// Handle returns the customer, or errs.ErrObjectNotFound (wrapped) when the
// id is unknown.
func (h GetCustomerByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerByIDQuery,
) (GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllCustomersQueryResponse{}, err
	}

	var c GetAllCustomersQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			email
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(&id, &c.Name, &c.Address, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllCustomersQueryResponse{}, errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}
	if err != nil {
		return GetAllCustomersQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllCustomersQueryResponse{}, err
	}
	c.ID = customerID

	return c, nil
}
