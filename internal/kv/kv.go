// internal/kv/kv.go
package kv

import (
	"context"
	"errors"
)

// Key identifies one persisted settings domain. Every domain owns exactly
// one entry; values are JSON-encoded by the stores that use them.
type Key string

const (
	KeyAppointments     Key = "appointments"
	KeyTimeSlots        Key = "apate-timeslots"
	KeyAppointmentTypes Key = "apate-appointment-types"
	KeyAvailability     Key = "apate-availability-settings"
	KeyBusinessProfile  Key = "businessProfile"
	KeySettings         Key = "apate-settings"
)

var ErrClosed = errors.New("kv store closed")

// Store is the persistence collaborator injected into every domain store.
// Implementations must be safe for use from a single goroutine at a time;
// the application runs a single reader/writer context.
type Store interface {
	// Get returns the stored value for key and whether an entry exists.
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	// Put stores value under key, replacing any existing entry.
	Put(ctx context.Context, key Key, value []byte) error
	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
	Close() error
}
