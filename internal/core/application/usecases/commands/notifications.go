package commands

import (
	"logistics/internal/core/domain/model/kernel"
)

// Notification is an outbound push message emitted by a handler after its
// transaction commits. The entity id is resolved to a device token by the
// delivery worker, never by the handler: the engine's success is decoupled
// from notification channel health.
type Notification struct {
	EntityID kernel.UUID
	Title    string
	Body     string
}

// NotificationQueue accepts notifications for best-effort asynchronous
// delivery. Enqueue must never block the caller; a full queue drops the
// message.
type NotificationQueue interface {
	Enqueue(n Notification)
}
