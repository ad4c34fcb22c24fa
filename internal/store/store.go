// internal/store/store.go

// Package store implements the persistence contracts over the key-value
// layer: the appointment collection, the three configuration domains, the
// business profile draft/snapshot manager, and general UI settings.
//
// Storage read or parse failures never propagate: each store logs the
// problem and falls back to its hard-coded default. Validation failures on
// write abort the write and leave persisted state intact.
package store

import (
	"errors"
	"fmt"
)

// ErrValidation marks errors callers should surface to the user rather
// than treat as storage failures.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned when an identifier does not match any record.
var ErrNotFound = errors.New("not found")

// ErrLastAppointmentType rejects deleting the only remaining type.
var ErrLastAppointmentType = errors.New("at least one appointment type must exist")

func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
