package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Notifier is the outbound push-message collaborator. Delivery is
// best-effort: implementations log failures and apply their own retry
// policy; callers never roll back a state transition because a push failed.
type Notifier interface {
	Send(ctx context.Context, deviceToken, title, body string) error
}

// DeviceDirectory resolves the push device token registered for an entity
// (driver or customer). Returns errs.ErrObjectNotFound when the entity has
// no registered device, in which case the notification is skipped.
type DeviceDirectory interface {
	LookupDeviceToken(ctx context.Context, entityID kernel.UUID) (string, error)

	// RegisterDeviceToken stores or replaces the device token for an entity.
	RegisterDeviceToken(ctx context.Context, entityID kernel.UUID, token string) error
}
