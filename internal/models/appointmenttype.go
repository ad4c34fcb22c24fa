// internal/models/appointmenttype.go
package models

import (
	"fmt"
	"strings"
)

const (
	minTypeDurationMinutes = 5
	maxTypeDurationMinutes = 240
)

// AppointmentType is a bookable category with a default duration and a
// display color tag. The color is presentation-only and never validated
// beyond being present.
type AppointmentType struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Duration int    `json:"duration"`
	Color    string `json:"color"`
}

func (t AppointmentType) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("label is required")
	}
	if t.Duration < minTypeDurationMinutes || t.Duration > maxTypeDurationMinutes {
		return fmt.Errorf("duration must be between %d and %d minutes", minTypeDurationMinutes, maxTypeDurationMinutes)
	}
	if strings.TrimSpace(t.Color) == "" {
		return fmt.Errorf("color is required")
	}
	return nil
}

// DefaultAppointmentTypes returns the built-in categories, which are also
// the reset target. At least one type must exist at all times.
func DefaultAppointmentTypes() []AppointmentType {
	return []AppointmentType{
		{
			ID:       "consultation",
			Label:    "Consultation",
			Duration: 60,
			Color:    "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200",
		},
		{
			ID:       "follow-up",
			Label:    "Follow-up",
			Duration: 30,
			Color:    "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200",
		},
		{
			ID:       "routine",
			Label:    "Routine Checkup",
			Duration: 45,
			Color:    "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-200",
		},
	}
}
