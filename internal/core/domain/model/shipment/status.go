package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	PendingPickup ──> Delivered ──┐
//	                     ▲        │
//	                     └────────┘
//	            (re-delivery overwrites)
//
// Re-delivering an already-delivered shipment is deliberately allowed: the
// delivery transition is idempotent-by-overwrite, replacing the proof fields
// and the actual delivery time with the newer values.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPickup is the initial status set at assignment: a driver is
	// booked and the shipment awaits pickup.
	PendingPickup

	// Delivered indicates the shipment reached its destination and proof of
	// delivery was recorded.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		PendingPickup: "pending-pickup",
		Delivered:     "delivered",
	}
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known shipment status", s))
}

// Validate checks the Status is one of the known states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted form of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the driver's involvement.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Deliver transitions the status to Delivered. Allowed from PendingPickup
// and from Delivered itself (re-delivery overwrite).
func (s Status) Deliver() (Status, error) {
	if s != PendingPickup && s != Delivered {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver from", s))
	}
	return Delivered, nil
}
