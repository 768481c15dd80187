// Package http is the inbound REST adapter. Handlers translate requests into
// commands and queries and translate results and errors back to JSON; no
// business logic lives here.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	saveCustomerHandler                 commands.SaveCustomerCommandHandler
	deleteCustomerHandler               commands.DeleteCustomerCommandHandler
	saveVehicleHandler                  commands.SaveVehicleCommandHandler
	deleteVehicleHandler                commands.DeleteVehicleCommandHandler
	saveDriverHandler                   commands.SaveDriverCommandHandler
	deleteDriverHandler                 commands.DeleteDriverCommandHandler
	updateDriverLocationHandler         commands.UpdateDriverLocationCommandHandler
	saveOrderHandler                    commands.SaveOrderCommandHandler
	deleteOrderHandler                  commands.DeleteOrderCommandHandler
	assignShipmentHandler               commands.AssignShipmentCommandHandler
	recordDeliveryHandler               commands.RecordDeliveryCommandHandler
	updateShipmentDriverLocationHandler commands.UpdateShipmentDriverLocationCommandHandler
	deleteShipmentHandler               commands.DeleteShipmentCommandHandler
	registerDeviceHandler               commands.RegisterDeviceCommandHandler

	// Query handlers
	getAllCustomersHandler     queries.GetAllCustomersQueryHandler
	getCustomerByIDHandler     queries.GetCustomerByIDQueryHandler
	getAllVehiclesHandler      queries.GetAllVehiclesQueryHandler
	getVehicleByIDHandler      queries.GetVehicleByIDQueryHandler
	getAllDriversHandler       queries.GetAllDriversQueryHandler
	getDriverByIDHandler       queries.GetDriverByIDQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getAllShipmentsHandler     queries.GetAllShipmentsQueryHandler
	getShipmentByIDHandler     queries.GetShipmentByIDQueryHandler
	getShipmentHistoryHandler  queries.GetShipmentHistoryQueryHandler
}

// ServerHandlers bundles every use case handler the server exposes. Keeping
// them in one struct keeps the composition root readable.
type ServerHandlers struct {
	SaveCustomer                 commands.SaveCustomerCommandHandler
	DeleteCustomer               commands.DeleteCustomerCommandHandler
	SaveVehicle                  commands.SaveVehicleCommandHandler
	DeleteVehicle                commands.DeleteVehicleCommandHandler
	SaveDriver                   commands.SaveDriverCommandHandler
	DeleteDriver                 commands.DeleteDriverCommandHandler
	UpdateDriverLocation         commands.UpdateDriverLocationCommandHandler
	SaveOrder                    commands.SaveOrderCommandHandler
	DeleteOrder                  commands.DeleteOrderCommandHandler
	AssignShipment               commands.AssignShipmentCommandHandler
	RecordDelivery               commands.RecordDeliveryCommandHandler
	UpdateShipmentDriverLocation commands.UpdateShipmentDriverLocationCommandHandler
	DeleteShipment               commands.DeleteShipmentCommandHandler
	RegisterDevice               commands.RegisterDeviceCommandHandler

	GetAllCustomers     queries.GetAllCustomersQueryHandler
	GetCustomerByID     queries.GetCustomerByIDQueryHandler
	GetAllVehicles      queries.GetAllVehiclesQueryHandler
	GetVehicleByID      queries.GetVehicleByIDQueryHandler
	GetAllDrivers       queries.GetAllDriversQueryHandler
	GetDriverByID       queries.GetDriverByIDQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrderByID        queries.GetOrderByIDQueryHandler
	GetAllShipments     queries.GetAllShipmentsQueryHandler
	GetShipmentByID     queries.GetShipmentByIDQueryHandler
	GetShipmentHistory  queries.GetShipmentHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		saveCustomerHandler:                 handlers.SaveCustomer,
		deleteCustomerHandler:               handlers.DeleteCustomer,
		saveVehicleHandler:                  handlers.SaveVehicle,
		deleteVehicleHandler:                handlers.DeleteVehicle,
		saveDriverHandler:                   handlers.SaveDriver,
		deleteDriverHandler:                 handlers.DeleteDriver,
		updateDriverLocationHandler:         handlers.UpdateDriverLocation,
		saveOrderHandler:                    handlers.SaveOrder,
		deleteOrderHandler:                  handlers.DeleteOrder,
		assignShipmentHandler:               handlers.AssignShipment,
		recordDeliveryHandler:               handlers.RecordDelivery,
		updateShipmentDriverLocationHandler: handlers.UpdateShipmentDriverLocation,
		deleteShipmentHandler:               handlers.DeleteShipment,
		registerDeviceHandler:               handlers.RegisterDevice,
		getAllCustomersHandler:              handlers.GetAllCustomers,
		getCustomerByIDHandler:              handlers.GetCustomerByID,
		getAllVehiclesHandler:               handlers.GetAllVehicles,
		getVehicleByIDHandler:               handlers.GetVehicleByID,
		getAllDriversHandler:                handlers.GetAllDrivers,
		getDriverByIDHandler:                handlers.GetDriverByID,
		getAvailableDriversHandler:          handlers.GetAvailableDrivers,
		getAllOrdersHandler:                 handlers.GetAllOrders,
		getOrderByIDHandler:                 handlers.GetOrderByID,
		getAllShipmentsHandler:              handlers.GetAllShipments,
		getShipmentByIDHandler:              handlers.GetShipmentByID,
		getShipmentHistoryHandler:           handlers.GetShipmentHistory,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:id", s.GetVehicleByID)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/:id", s.GetDriverByID)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.PATCH("/drivers/:id/location", s.UpdateDriverLocation)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/history", s.GetShipmentHistory)
	api.GET("/shipments/:id", s.GetShipmentByID)
	api.POST("/shipments/assign/:orderId", s.AssignShipment)
	api.POST("/shipments/:id/delivery", s.RecordDelivery)
	api.PATCH("/shipments/:id/location", s.UpdateShipmentDriverLocation)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	api.PUT("/devices/:entityId", s.RegisterDevice)
}

// renderError maps a use case error to its HTTP status.
func renderError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrNoDriversAvailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, queries.ErrInvalidTimeRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}
