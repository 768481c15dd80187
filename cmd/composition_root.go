package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/devicerepo"
	"logistics/internal/adapters/out/push"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types, so each Create method builds a fresh one.
type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	deviceDirectory ports.DeviceDirectory
	dispatcher      *notifications.Dispatcher
	logger          *slog.Logger
}

// NewCompositionRoot assembles the object graph. The returned root owns the
// notification dispatcher; call Close on shutdown to drain it.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	deviceDirectory := devicerepo.NewGormDeviceDirectory(gormDB)
	notifier := push.NewGatewayNotifier(configs.PushGatewayURL, configs.PushGatewayAPIKey)

	return &CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		deviceDirectory: deviceDirectory,
		dispatcher:      notifications.NewDispatcher(deviceDirectory, notifier, logger, configs.NotificationQueueSize),
		logger:          logger,
	}
}

// Close drains and stops the notification dispatcher.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveCustomerCommandHandler() commands.SaveCustomerCommandHandler {
	return commands.NewSaveCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateSaveVehicleCommandHandler() commands.SaveVehicleCommandHandler {
	return commands.NewSaveVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateSaveDriverCommandHandler() commands.SaveDriverCommandHandler {
	return commands.NewSaveDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSaveOrderCommandHandler() commands.SaveOrderCommandHandler {
	return commands.NewSaveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignShipmentCommandHandler() commands.AssignShipmentCommandHandler {
	return commands.NewAssignShipmentCommandHandler(c.crossUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	return commands.NewRecordDeliveryCommandHandler(c.crossUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateShipmentDriverLocationCommandHandler() commands.UpdateShipmentDriverLocationCommandHandler {
	return commands.NewUpdateShipmentDriverLocationCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDeviceCommandHandler() commands.RegisterDeviceCommandHandler {
	return commands.NewRegisterDeviceCommandHandler(c.deviceDirectory)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByIDQueryHandler() queries.GetCustomerByIDQueryHandler {
	return queries.NewGetCustomerByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleByIDQueryHandler() queries.GetVehicleByIDQueryHandler {
	return queries.NewGetVehicleByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverByIDQueryHandler() queries.GetDriverByIDQueryHandler {
	return queries.NewGetDriverByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStrandedDriversQueryHandler() queries.GetStrandedDriversQueryHandler {
	return queries.NewGetStrandedDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

// CreateServerHandlers bundles every handler the HTTP server mounts.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		SaveCustomer:                 c.CreateSaveCustomerCommandHandler(),
		DeleteCustomer:               c.CreateDeleteCustomerCommandHandler(),
		SaveVehicle:                  c.CreateSaveVehicleCommandHandler(),
		DeleteVehicle:                c.CreateDeleteVehicleCommandHandler(),
		SaveDriver:                   c.CreateSaveDriverCommandHandler(),
		DeleteDriver:                 c.CreateDeleteDriverCommandHandler(),
		UpdateDriverLocation:         c.CreateUpdateDriverLocationCommandHandler(),
		SaveOrder:                    c.CreateSaveOrderCommandHandler(),
		DeleteOrder:                  c.CreateDeleteOrderCommandHandler(),
		AssignShipment:               c.CreateAssignShipmentCommandHandler(),
		RecordDelivery:               c.CreateRecordDeliveryCommandHandler(),
		UpdateShipmentDriverLocation: c.CreateUpdateShipmentDriverLocationCommandHandler(),
		DeleteShipment:               c.CreateDeleteShipmentCommandHandler(),
		RegisterDevice:               c.CreateRegisterDeviceCommandHandler(),

		GetAllCustomers:     c.CreateGetAllCustomersQueryHandler(),
		GetCustomerByID:     c.CreateGetCustomerByIDQueryHandler(),
		GetAllVehicles:      c.CreateGetAllVehiclesQueryHandler(),
		GetVehicleByID:      c.CreateGetVehicleByIDQueryHandler(),
		GetAllDrivers:       c.CreateGetAllDriversQueryHandler(),
		GetDriverByID:       c.CreateGetDriverByIDQueryHandler(),
		GetAvailableDrivers: c.CreateGetAvailableDriversQueryHandler(),
		GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetOrderByID:        c.CreateGetOrderByIDQueryHandler(),
		GetAllShipments:     c.CreateGetAllShipmentsQueryHandler(),
		GetShipmentByID:     c.CreateGetShipmentByIDQueryHandler(),
		GetShipmentHistory:  c.CreateGetShipmentHistoryQueryHandler(),
	}
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStrandedDriversQueryHandler(), c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
