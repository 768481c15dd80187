package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetAllShipmentsQuery()

	shipments, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = shipmentFromQuery(sh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentByID handles GET /api/v1/shipments/:id.
func (s *Server) GetShipmentByID(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid shipment id: "+err.Error())
	}

	query, err := queries.NewGetShipmentByIDQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	sh, err := s.getShipmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromQuery(sh))
}

// GetShipmentHistory handles GET /api/v1/shipments/history. All query
// parameters (driverId, customerId, from, to) are optional; from and to are
// RFC3339 timestamps.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	var driverID, customerID *kernel.UUID
	var from, to *time.Time

	if raw := ctx.QueryParam("driverId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid driverId: "+err.Error())
		}
		driverID = &id
	}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid customerId: "+err.Error())
		}
		customerID = &id
	}
	if raw := ctx.QueryParam("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "invalid from timestamp: "+err.Error())
		}
		from = &t
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "invalid to timestamp: "+err.Error())
		}
		to = &t
	}

	query, err := queries.NewGetShipmentHistoryQuery(driverID, customerID, from, to)
	if err != nil {
		return renderError(ctx, err)
	}

	shipments, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = shipmentFromQuery(sh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignShipment handles POST /api/v1/shipments/assign/:orderId. Returns 409
// when no driver is available.
func (s *Server) AssignShipment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	command, err := commands.NewAssignShipmentCommand(orderID)
	if err != nil {
		return renderError(ctx, err)
	}

	sh, err := s.assignShipmentHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromDomain(sh))
}

// RecordDelivery handles POST /api/v1/shipments/:id/delivery.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid shipment id: "+err.Error())
	}

	var request DeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	command, err := commands.NewRecordDeliveryCommand(id, request.QRCode, request.Signature)
	if err != nil {
		return renderError(ctx, err)
	}

	sh, err := s.recordDeliveryHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(sh))
}

// UpdateShipmentDriverLocation handles PATCH /api/v1/shipments/:id/location.
func (s *Server) UpdateShipmentDriverLocation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid shipment id: "+err.Error())
	}

	var request LocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(request.Lat, request.Lon)
	if err != nil {
		return renderError(ctx, err)
	}

	command, err := commands.NewUpdateShipmentDriverLocationCommand(id, location)
	if err != nil {
		return renderError(ctx, err)
	}

	sh, err := s.updateShipmentDriverLocationHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(sh))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid shipment id: "+err.Error())
	}

	command, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
