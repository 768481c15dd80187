package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(o))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveOrder(ctx, kernel.NewUUID(), request, http.StatusCreated)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveOrder(ctx, id, request, http.StatusOK)
}

func (s *Server) saveOrder(ctx echo.Context, id kernel.UUID, request OrderRequest, status int) error {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id: "+err.Error())
	}

	command, err := commands.NewSaveOrderCommand(id, customerID, request.Number, request.Status)
	if err != nil {
		return renderError(ctx, err)
	}

	o, err := s.saveOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(status, orderFromDomain(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	command, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
