package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// RegisterDevice handles PUT /api/v1/devices/:entityId. The entity id is a
// driver or customer id; the registration replaces any previous token.
func (s *Server) RegisterDevice(ctx echo.Context) error {
	entityID, err := pathUUID(ctx, "entityId")
	if err != nil {
		return badRequest(ctx, "invalid entity id: "+err.Error())
	}

	var request DeviceRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	command, err := commands.NewRegisterDeviceCommand(entityID, request.DeviceToken)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.registerDeviceHandler.Handle(ctx.Request().Context(), command); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
