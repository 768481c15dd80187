package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = driverFromQuery(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available. The snapshot is
// advisory: assignment claims under lock, not from this list.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = driverFromQuery(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverByID handles GET /api/v1/drivers/:id.
func (s *Server) GetDriverByID(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid driver id: "+err.Error())
	}

	query, err := queries.NewGetDriverByIDQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	d, err := s.getDriverByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverFromQuery(d))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request DriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveDriver(ctx, kernel.NewUUID(), request, http.StatusCreated)
}

// UpdateDriver handles PUT /api/v1/drivers/:id. Availability and location are
// not part of the payload: the engine owns one, position reports the other.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid driver id: "+err.Error())
	}

	var request DriverRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	return s.saveDriver(ctx, id, request, http.StatusOK)
}

func (s *Server) saveDriver(ctx echo.Context, id kernel.UUID, request DriverRequest, status int) error {
	var vehicleID *kernel.UUID
	if request.VehicleID != nil {
		parsed, err := kernel.UUIDFromString(*request.VehicleID)
		if err != nil {
			return badRequest(ctx, "invalid vehicle id: "+err.Error())
		}
		vehicleID = &parsed
	}

	command, err := commands.NewSaveDriverCommand(id, request.Name, vehicleID)
	if err != nil {
		return renderError(ctx, err)
	}

	d, err := s.saveDriverHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(status, driverFromDomain(d))
}

// UpdateDriverLocation handles PATCH /api/v1/drivers/:id/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid driver id: "+err.Error())
	}

	var request LocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lon)
	if err != nil {
		return renderError(ctx, err)
	}

	command, err := commands.NewUpdateDriverLocationCommand(id, location)
	if err != nil {
		return renderError(ctx, err)
	}

	d, err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverFromDomain(d))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id. Shipments referencing the
// driver keep running with a nil driver reference.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid driver id: "+err.Error())
	}

	command, err := commands.NewDeleteDriverCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteDriverHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
