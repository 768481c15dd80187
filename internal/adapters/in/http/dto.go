package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is the JSON representation of a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func locationFromGeoPoint(point *kernel.GeoPoint) *Location {
	if point == nil {
		return nil
	}
	return &Location{Lat: point.Lat(), Lon: point.Lon()}
}

func uuidToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// CustomerRequest is the create/update body for customers.
type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerResponse is the customer JSON representation.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func customerFromDomain(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
		Email:   c.Email(),
	}
}

func customerFromQuery(c queries.GetAllCustomersQueryResponse) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

// VehicleRequest is the create/update body for vehicles.
type VehicleRequest struct {
	Plate string `json:"plate"`
	Kind  string `json:"kind"`
	Model string `json:"model"`
	Brand string `json:"brand"`
}

// VehicleResponse is the vehicle JSON representation.
type VehicleResponse struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Kind  string `json:"kind"`
	Model string `json:"model"`
	Brand string `json:"brand"`
}

func vehicleFromDomain(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:    v.ID().String(),
		Plate: v.Plate(),
		Kind:  v.Kind(),
		Model: v.Model(),
		Brand: v.Brand(),
	}
}

func vehicleFromQuery(v queries.GetAllVehiclesQueryResponse) VehicleResponse {
	return VehicleResponse{
		ID:    v.ID.String(),
		Plate: v.Plate,
		Kind:  v.Kind,
		Model: v.Model,
		Brand: v.Brand,
	}
}

// DriverRequest is the create/update body for drivers. Availability is
// absent on purpose: it cannot be set through the API.
type DriverRequest struct {
	Name      string  `json:"name"`
	VehicleID *string `json:"vehicleId"`
}

// DriverResponse is the driver JSON representation.
type DriverResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	Location  *Location `json:"location"`
	VehicleID *string   `json:"vehicleId"`
}

func driverFromDomain(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID().String(),
		Name:      d.Name(),
		Available: d.IsAvailable(),
		Location:  locationFromGeoPoint(d.Location()),
		VehicleID: uuidToString(d.VehicleID()),
	}
}

func driverFromQuery(d queries.GetAllDriversQueryResponse) DriverResponse {
	return DriverResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Available: d.Available,
		Location:  locationFromGeoPoint(d.Location),
		VehicleID: uuidToString(d.VehicleID),
	}
}

// OrderRequest is the create/update body for orders.
type OrderRequest struct {
	CustomerID string `json:"customerId"`
	Number     string `json:"number"`
	Status     string `json:"status"`
}

// OrderResponse is the order JSON representation.
type OrderResponse struct {
	ID                    string     `json:"id"`
	CustomerID            string     `json:"customerId"`
	Number                string     `json:"number"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"createdAt"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

func orderFromDomain(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                    o.ID().String(),
		CustomerID:            o.CustomerID().String(),
		Number:                o.Number(),
		Status:                o.Status(),
		CreatedAt:             o.CreatedAt(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
	}
}

func orderFromQuery(o queries.GetAllOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:                    o.ID.String(),
		CustomerID:            o.CustomerID.String(),
		Number:                o.Number,
		Status:                o.Status,
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
}

// LocationRequest is the body of a position report.
type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DeliveryRequest carries the proof tokens captured at the door.
type DeliveryRequest struct {
	QRCode    string `json:"qrCode"`
	Signature string `json:"signature"`
}

// DeviceRequest binds a push device token to the entity in the path.
type DeviceRequest struct {
	DeviceToken string `json:"deviceToken"`
}

// ShipmentResponse is the shipment JSON representation.
type ShipmentResponse struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	DriverID              *string    `json:"driverId"`
	VehicleID             *string    `json:"vehicleId"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"createdAt"`
	EstimatedDeliveryTime time.Time  `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime"`
	Origin                *Location  `json:"origin"`
	Destination           *Location  `json:"destination"`
	QRCode                string     `json:"qrCode"`
	Signature             string     `json:"signature"`
}

func shipmentFromDomain(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                    s.ID().String(),
		OrderID:               s.OrderID().String(),
		DriverID:              uuidToString(s.DriverID()),
		VehicleID:             uuidToString(s.VehicleID()),
		Status:                s.Status().String(),
		CreatedAt:             s.CreatedAt(),
		EstimatedDeliveryTime: s.EstimatedDeliveryTime(),
		ActualDeliveryTime:    s.ActualDeliveryTime(),
		Origin:                locationFromGeoPoint(s.Origin()),
		Destination:           locationFromGeoPoint(s.Destination()),
		QRCode:                s.QRCode(),
		Signature:             s.Signature(),
	}
}

func shipmentFromQuery(s queries.GetAllShipmentsQueryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                    s.ID.String(),
		OrderID:               s.OrderID.String(),
		DriverID:              uuidToString(s.DriverID),
		VehicleID:             uuidToString(s.VehicleID),
		Status:                s.Status,
		CreatedAt:             s.CreatedAt,
		EstimatedDeliveryTime: s.EstimatedDeliveryTime,
		ActualDeliveryTime:    s.ActualDeliveryTime,
		Origin:                locationFromGeoPoint(s.Origin),
		Destination:           locationFromGeoPoint(s.Destination),
		QRCode:                s.QRCode,
		Signature:             s.Signature,
	}
}
