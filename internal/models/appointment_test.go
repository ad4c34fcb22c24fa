package models

import (
	"testing"
	"time"
)

func validAppointment() Appointment {
	return Appointment{
		ID:    "appt-1",
		Name:  "John",
		Email: "john@x.com",
		Date:  time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		Time:  "9:00 AM",
		Type:  "consultation",
	}
}

func TestAppointmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Appointment)
		wantErr bool
	}{
		{"valid", func(a *Appointment) {}, false},
		{"short name", func(a *Appointment) { a.Name = "J" }, true},
		{"bad email", func(a *Appointment) { a.Email = "john" }, true},
		{"zero date", func(a *Appointment) { a.Date = time.Time{} }, true},
		{"missing time", func(a *Appointment) { a.Time = " " }, true},
		{"missing type", func(a *Appointment) { a.Type = "" }, true},
		{"bad client email", func(a *Appointment) { a.ClientEmail = "nope" }, true},
		{"valid client email", func(a *Appointment) { a.ClientEmail = "jane@x.com" }, false},
		{"bad client phone", func(a *Appointment) { a.ClientPhone = "123" }, true},
		{"valid client phone", func(a *Appointment) { a.ClientPhone = "(555) 123-4567" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointment := validAppointment()
			tt.mutate(&appointment)
			err := appointment.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseAppointmentDate(t *testing.T) {
	got, err := ParseAppointmentDate("2025-03-15")
	if err != nil {
		t.Fatalf("ParseAppointmentDate: %v", err)
	}
	want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ParseAppointmentDate("2025-03-15T10:00:00Z")
	if err != nil {
		t.Fatalf("ParseAppointmentDate RFC3339: %v", err)
	}
	if got.Day() != 15 || got.Hour() != 10 {
		t.Errorf("unexpected parsed value %v", got)
	}

	if _, err := ParseAppointmentDate("15/03/2025"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := ParseAppointmentDate(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestAppointmentStartTime(t *testing.T) {
	appointment := validAppointment()
	appointment.Time = "2:30 PM"

	start, err := appointment.StartTime()
	if err != nil {
		t.Fatalf("StartTime: %v", err)
	}
	want := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("StartTime = %v, want %v", start, want)
	}

	appointment.Time = "later"
	if _, err := appointment.StartTime(); err == nil {
		t.Error("expected error for unparseable slot label")
	}
}

func TestSeedAppointments(t *testing.T) {
	seed := SeedAppointments()
	if len(seed) != 2 {
		t.Fatalf("len = %d, want 2", len(seed))
	}
	if seed[0].Name != "John Doe" || seed[0].Time != "9:00 AM" {
		t.Errorf("unexpected first seed record: %+v", seed[0])
	}
	if seed[1].Type != "follow-up" {
		t.Errorf("unexpected second seed record: %+v", seed[1])
	}
}
