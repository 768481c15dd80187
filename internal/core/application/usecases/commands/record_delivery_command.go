package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecordDeliveryCommandIsNotConstructed = errors.New(
	"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
)

// RecordDeliveryCommand marks a shipment as delivered, carrying the proof
// tokens captured at the door. The tokens are opaque: they are stored
// verbatim and never parsed or verified here.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	qrCode     string
	signature  string

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a delivery. Empty
// proof tokens are accepted; proof capture is the client's concern.
func NewRecordDeliveryCommand(shipmentID kernel.UUID, qrCode, signature string) (RecordDeliveryCommand, error) {
	command := RecordDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentID.Validate(); err != nil {
		return RecordDeliveryCommand{}, err
	}
	command.shipmentID = shipmentID
	command.qrCode = qrCode
	command.signature = signature

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// ShipmentID returns the shipment to mark delivered.
func (c RecordDeliveryCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// QRCode returns the QR proof token.
func (c RecordDeliveryCommand) QRCode() string { return c.qrCode }

// Signature returns the digital signature proof token.
func (c RecordDeliveryCommand) Signature() string { return c.signature }
