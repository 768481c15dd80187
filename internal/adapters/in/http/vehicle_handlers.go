package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewGetAllVehiclesQuery()

	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleFromQuery(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicleByID handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicleByID(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid vehicle id: "+err.Error())
	}

	query, err := queries.NewGetVehicleByIDQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	v, err := s.getVehicleByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromQuery(v))
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var request VehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveVehicle(ctx, kernel.NewUUID(), request, http.StatusCreated)
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid vehicle id: "+err.Error())
	}

	var request VehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveVehicle(ctx, id, request, http.StatusOK)
}

func (s *Server) saveVehicle(ctx echo.Context, id kernel.UUID, request VehicleRequest, status int) error {
	command, err := commands.NewSaveVehicleCommand(
		id,
		request.Plate,
		request.Kind,
		request.Model,
		request.Brand,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	v, err := s.saveVehicleHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(status, vehicleFromDomain(v))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id. Drivers referencing the
// vehicle are detached, not deleted.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid vehicle id: "+err.Error())
	}

	command, err := commands.NewDeleteVehicleCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteVehicleHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
