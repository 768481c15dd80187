package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = customerFromQuery(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerByID handles GET /api/v1/customers/:id.
func (s *Server) GetCustomerByID(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerByIDQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	c, err := s.getCustomerByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromQuery(c))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveCustomer(ctx, kernel.NewUUID(), request, http.StatusCreated)
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id: "+err.Error())
	}

	var request CustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveCustomer(ctx, id, request, http.StatusOK)
}

func (s *Server) saveCustomer(ctx echo.Context, id kernel.UUID, request CustomerRequest, status int) error {
	command, err := commands.NewSaveCustomerCommand(
		id,
		request.Name,
		request.Address,
		request.Phone,
		request.Email,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	c, err := s.saveCustomerHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(status, customerFromDomain(c))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid customer id: "+err.Error())
	}

	command, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
