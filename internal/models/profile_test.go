package models

import "testing"

func testLocations() []Location {
	return []Location{
		{ID: "loc-1", Name: "Downtown", Address: "1 Main St", IsDefault: true},
		{ID: "loc-2", Name: "Uptown", Address: "2 High St"},
		{ID: "loc-3", Name: "Harbor", Address: "3 Pier Rd"},
	}
}

func TestSetDefaultLocationClearsOthers(t *testing.T) {
	profile := DefaultBusinessProfile()
	profile.Locations = testLocations()

	if !profile.SetDefaultLocation("loc-3") {
		t.Fatal("SetDefaultLocation returned false for a known id")
	}

	defaults := 0
	for _, location := range profile.Locations {
		if location.IsDefault {
			defaults++
			if location.ID != "loc-3" {
				t.Errorf("unexpected default location %q", location.ID)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default count = %d, want 1", defaults)
	}
}

func TestSetDefaultLocationUnknownID(t *testing.T) {
	profile := DefaultBusinessProfile()
	profile.Locations = testLocations()

	if profile.SetDefaultLocation("missing") {
		t.Error("SetDefaultLocation returned true for an unknown id")
	}
	if !profile.Locations[0].IsDefault {
		t.Error("failed lookup must not disturb existing default")
	}
}

func TestRemoveLocationPromotesFirstRemaining(t *testing.T) {
	profile := DefaultBusinessProfile()
	profile.Locations = testLocations()

	if !profile.RemoveLocation("loc-1") {
		t.Fatal("RemoveLocation returned false for a known id")
	}
	if len(profile.Locations) != 2 {
		t.Fatalf("locations = %d, want 2", len(profile.Locations))
	}
	if !profile.Locations[0].IsDefault {
		t.Error("first remaining location was not promoted to default")
	}
	if profile.Locations[1].IsDefault {
		t.Error("more than one default after promotion")
	}
}

func TestRemoveLocationNonDefaultKeepsDefault(t *testing.T) {
	profile := DefaultBusinessProfile()
	profile.Locations = testLocations()

	if !profile.RemoveLocation("loc-2") {
		t.Fatal("RemoveLocation returned false for a known id")
	}
	if !profile.Locations[0].IsDefault {
		t.Error("default flag moved although the default was not removed")
	}
}

func TestRemoveLastLocation(t *testing.T) {
	profile := DefaultBusinessProfile()
	profile.Locations = []Location{
		{ID: "only", Name: "Only", Address: "1 Main St", IsDefault: true},
	}

	if !profile.RemoveLocation("only") {
		t.Fatal("RemoveLocation returned false for a known id")
	}
	if len(profile.Locations) != 0 {
		t.Errorf("locations = %d, want 0", len(profile.Locations))
	}
}

func TestNormalizeWebsite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"bare host", "example.com", "https://example.com"},
		{"http kept", "http://example.com", "http://example.com"},
		{"https kept", "https://example.com/booking", "https://example.com/booking"},
		{"mixed case scheme", "HTTPS://example.com", "HTTPS://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWebsite(tt.input); got != tt.want {
				t.Errorf("NormalizeWebsite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func validProfile() BusinessProfile {
	profile := DefaultBusinessProfile()
	profile.Name = "Apate Wellness"
	profile.ContactInfo = ContactInfo{
		Email: "hello@apate.example",
		Phone: "+15551234567",
	}
	profile.Address = Address{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "USA",
	}
	return profile
}

func TestBusinessProfileValidate(t *testing.T) {
	profile := validProfile()
	if err := profile.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	t.Run("missing name", func(t *testing.T) {
		p := validProfile()
		p.Name = "  "
		if err := p.Validate(); err == nil {
			t.Error("expected error for missing name")
		}
	})

	t.Run("bad contact email", func(t *testing.T) {
		p := validProfile()
		p.ContactInfo.Email = "not-an-email"
		if err := p.Validate(); err == nil {
			t.Error("expected error for invalid email")
		}
	})

	t.Run("bad branding color", func(t *testing.T) {
		p := validProfile()
		p.Branding.PrimaryColor = "green"
		if err := p.Validate(); err == nil {
			t.Error("expected error for invalid color")
		}
	})

	t.Run("shorthand branding color allowed", func(t *testing.T) {
		p := validProfile()
		p.Branding.SecondaryColor = "#fa0"
		if err := p.Validate(); err != nil {
			t.Errorf("shorthand hex rejected: %v", err)
		}
	})

	t.Run("two defaults rejected", func(t *testing.T) {
		p := validProfile()
		p.Locations = []Location{
			{ID: "a", Name: "A", Address: "1 St", IsDefault: true},
			{ID: "b", Name: "B", Address: "2 St", IsDefault: true},
		}
		if err := p.Validate(); err == nil {
			t.Error("expected error for two default locations")
		}
	})

	t.Run("bad business hours", func(t *testing.T) {
		p := validProfile()
		p.BusinessHours[0].OpenTime = "9am"
		if err := p.Validate(); err == nil {
			t.Error("expected error for malformed open time")
		}
	})
}

func TestDefaultBusinessHours(t *testing.T) {
	hours := DefaultBusinessHours()
	if len(hours) != 7 {
		t.Fatalf("len = %d, want 7", len(hours))
	}
	for _, h := range hours {
		wantOpen := h.DayOfWeek >= 1 && h.DayOfWeek <= 5
		if h.IsOpen != wantOpen {
			t.Errorf("day %d IsOpen = %v, want %v", h.DayOfWeek, h.IsOpen, wantOpen)
		}
		if h.OpenTime != "09:00" || h.CloseTime != "17:00" {
			t.Errorf("day %d window = %s-%s, want 09:00-17:00", h.DayOfWeek, h.OpenTime, h.CloseTime)
		}
	}
}
