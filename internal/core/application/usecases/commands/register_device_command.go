package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRegisterDeviceCommandIsNotConstructed = errors.New(
		"RegisterDeviceCommand must be created via NewRegisterDeviceCommand constructor",
	)
	// ErrDeviceTokenIsRequired is returned when registering an empty token.
	ErrDeviceTokenIsRequired = errs.NewValueIsRequiredError("deviceToken")
)

// RegisterDeviceCommand binds a push device token to a driver or customer id.
// One token per entity: re-registering replaces the previous token, which is
// what happens when a user reinstalls the app.
type RegisterDeviceCommand struct { //nolint:recvcheck //using for validation
	entityID    kernel.UUID
	deviceToken string

	guard guard.ConstructorGuard
}

// NewRegisterDeviceCommand creates a device registration command.
func NewRegisterDeviceCommand(entityID kernel.UUID, deviceToken string) (RegisterDeviceCommand, error) {
	command := RegisterDeviceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := entityID.Validate(); err != nil {
		return RegisterDeviceCommand{}, err
	}
	if deviceToken == "" {
		return RegisterDeviceCommand{}, ErrDeviceTokenIsRequired
	}
	command.entityID = entityID
	command.deviceToken = deviceToken

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDeviceCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeviceCommandIsNotConstructed)
}

// EntityID returns the driver or customer the token belongs to.
func (c RegisterDeviceCommand) EntityID() kernel.UUID { return c.entityID }

// DeviceToken returns the push token.
func (c RegisterDeviceCommand) DeviceToken() string { return c.deviceToken }

// RegisterDeviceCommandHandler stores device registrations in the device
// directory.
type RegisterDeviceCommandHandler struct {
	directory ports.DeviceDirectory
}

// NewRegisterDeviceCommandHandler creates a handler for device registration.
func NewRegisterDeviceCommandHandler(directory ports.DeviceDirectory) RegisterDeviceCommandHandler {
	return RegisterDeviceCommandHandler{
		directory: directory,
	}
}

// Handle stores the registration.
func (h RegisterDeviceCommandHandler) Handle(ctx context.Context, command RegisterDeviceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.directory.RegisterDeviceToken(ctx, command.EntityID(), command.DeviceToken())
}
