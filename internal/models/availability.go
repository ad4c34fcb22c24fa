// internal/models/availability.go
package models

import (
	"fmt"
	"time"
)

// WorkHours is a daily start/end window in 24-hour HH:MM form.
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilitySettings controls which days and windows are bookable and
// how generated slots are spaced.
type AvailabilitySettings struct {
	WorkDays            []int     `json:"workDays"`
	WorkHours           WorkHours `json:"workHours"`
	AppointmentDuration int       `json:"appointmentDuration"`
	BufferTime          int       `json:"bufferTime"`
	MaxDaysInAdvance    int       `json:"maxDaysInAdvance"`
	TimeSlotInterval    int       `json:"timeSlotInterval"`
}

func (s AvailabilitySettings) Validate() error {
	for _, day := range s.WorkDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("workDays entries must be between 0 and 6")
		}
	}
	start, err := time.Parse(slotLayout24, s.WorkHours.Start)
	if err != nil {
		return fmt.Errorf("workHours.start must be in HH:MM format")
	}
	end, err := time.Parse(slotLayout24, s.WorkHours.End)
	if err != nil {
		return fmt.Errorf("workHours.end must be in HH:MM format")
	}
	if !start.Before(end) {
		return fmt.Errorf("workHours.start must be before workHours.end")
	}
	if s.AppointmentDuration < 5 || s.AppointmentDuration > 240 {
		return fmt.Errorf("appointmentDuration must be between 5 and 240 minutes")
	}
	if s.BufferTime < 0 || s.BufferTime > 60 {
		return fmt.Errorf("bufferTime must be between 0 and 60 minutes")
	}
	if s.MaxDaysInAdvance < 1 || s.MaxDaysInAdvance > 365 {
		return fmt.Errorf("maxDaysInAdvance must be between 1 and 365 days")
	}
	if s.TimeSlotInterval < 5 || s.TimeSlotInterval > 60 {
		return fmt.Errorf("timeSlotInterval must be between 5 and 60 minutes")
	}
	return nil
}

// DefaultAvailabilitySettings is Monday through Friday, nine to five.
func DefaultAvailabilitySettings() AvailabilitySettings {
	return AvailabilitySettings{
		WorkDays:            []int{1, 2, 3, 4, 5},
		WorkHours:           WorkHours{Start: "09:00", End: "17:00"},
		AppointmentDuration: 60,
		BufferTime:          15,
		MaxDaysInAdvance:    60,
		TimeSlotInterval:    30,
	}
}

// GenerateSlots expands the settings into 12-hour display slots for one
// working day, stepping by the configured interval and stopping when an
// appointment plus buffer would run past the end of the window.
func (s AvailabilitySettings) GenerateSlots() ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	start, _ := time.Parse(slotLayout24, s.WorkHours.Start)
	end, _ := time.Parse(slotLayout24, s.WorkHours.End)

	occupied := time.Duration(s.AppointmentDuration+s.BufferTime) * time.Minute
	step := time.Duration(s.TimeSlotInterval) * time.Minute

	var slots []string
	for cursor := start; !cursor.Add(occupied).After(end); cursor = cursor.Add(step) {
		slots = append(slots, cursor.Format(slotLayout12))
	}
	return slots, nil
}
