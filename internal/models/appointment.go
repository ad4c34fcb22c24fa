// internal/models/appointment.go
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const minAppointmentNameLength = 2

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}

// Appointment is a booked meeting record. Client* fields are filled in by
// the person the booking was shared with; Confirmed flips once they accept.
type Appointment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	ClientEmail string    `json:"clientEmail,omitempty"`
	ClientPhone string    `json:"clientPhone,omitempty"`
	Confirmed   bool      `json:"confirmed,omitempty"`
}

func (a Appointment) Validate() error {
	if len(strings.TrimSpace(a.Name)) < minAppointmentNameLength {
		return fmt.Errorf("name must be at least %d characters", minAppointmentNameLength)
	}
	if !IsEmail(a.Email) {
		return fmt.Errorf("email must be a valid email address")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(a.Time) == "" {
		return fmt.Errorf("time is required")
	}
	if strings.TrimSpace(a.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if a.ClientEmail != "" && !IsEmail(a.ClientEmail) {
		return fmt.Errorf("clientEmail must be a valid email address")
	}
	if a.ClientPhone != "" && !IsPhoneNumber(a.ClientPhone) {
		return fmt.Errorf("clientPhone must be a valid phone number")
	}
	return nil
}

// StartTime combines the calendar date with the slot label into the
// moment the appointment begins.
func (a Appointment) StartTime() (time.Time, error) {
	parsed, err := time.Parse(slotLayout12, strings.ToUpper(strings.TrimSpace(a.Time)))
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment time %q is not a valid slot label", a.Time)
	}
	return time.Date(
		a.Date.Year(), a.Date.Month(), a.Date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		a.Date.Location(),
	), nil
}

// SeedAppointments returns the records used to seed an empty store, and
// the fallback when stored data cannot be parsed.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:    "1",
			Name:  "John Doe",
			Email: "john@example.com",
			Date:  time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			Time:  "9:00 AM",
			Type:  "consultation",
			Notes: "First visit",
		},
		{
			ID:    "2",
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Date:  time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
			Time:  "2:00 PM",
			Type:  "follow-up",
		},
	}
}

// ParseAppointmentDate accepts the formats booking clients send: RFC3339
// timestamps or bare calendar dates.
func ParseAppointmentDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("date must be RFC3339 or YYYY-MM-DD")
}
