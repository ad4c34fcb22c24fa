// internal/models/profile.go
package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	defaultBrandingPrimary   = "#10b981"
	defaultBrandingSecondary = "#f59e0b"
	defaultBrandingFont      = "Inter"
)

// Branding colors accept both shorthand and full hex forms.
var brandingColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
var schemeRegex = regexp.MustCompile(`(?i)^https?://`)

// BusinessHours is one weekday's open window. Closed days keep their
// times so reopening a day restores what was there before.
type BusinessHours struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

func (h BusinessHours) Validate() error {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek must be between 0 and 6")
	}
	if _, err := time.Parse(slotLayout24, h.OpenTime); err != nil {
		return fmt.Errorf("openTime must be in HH:MM format")
	}
	if _, err := time.Parse(slotLayout24, h.CloseTime); err != nil {
		return fmt.Errorf("closeTime must be in HH:MM format")
	}
	return nil
}

// Location is a named place appointments can happen. At most one location
// carries the default flag at a time.
type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

func (l Location) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("location id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location name is required")
	}
	if strings.TrimSpace(l.Address) == "" {
		return fmt.Errorf("location address is required")
	}
	return nil
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
}

func (c ContactInfo) Validate() error {
	if !IsEmail(c.Email) {
		return fmt.Errorf("contact email must be a valid email address")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("contact phone is required")
	}
	if c.Website != "" {
		if _, err := url.ParseRequestURI(c.Website); err != nil {
			return fmt.Errorf("website must be a valid URL")
		}
	}
	return nil
}

// NormalizeWebsite prefixes bare hostnames with https:// so stored
// websites are always absolute. Empty input stays empty.
func NormalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !schemeRegex.MatchString(raw) {
		return "https://" + raw
	}
	return raw
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a Address) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("address %s is required", field.name)
		}
	}
	return nil
}

type Policies struct {
	Cancellation string `json:"cancellation,omitempty"`
	Refund       string `json:"refund,omitempty"`
	Other        string `json:"other,omitempty"`
}

type Branding struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
}

func (b Branding) Validate() error {
	if !brandingColorRegex.MatchString(b.PrimaryColor) {
		return fmt.Errorf("primaryColor must be a hex color like #10b981")
	}
	if !brandingColorRegex.MatchString(b.SecondaryColor) {
		return fmt.Errorf("secondaryColor must be a hex color like #f59e0b")
	}
	if strings.TrimSpace(b.FontFamily) == "" {
		return fmt.Errorf("fontFamily is required")
	}
	return nil
}

// BusinessProfile is the operator's business metadata. Logo holds inline
// image data (a data URL) and may be empty.
type BusinessProfile struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Logo          string          `json:"logo,omitempty"`
	ContactInfo   ContactInfo     `json:"contactInfo"`
	Address       Address         `json:"address"`
	BusinessHours []BusinessHours `json:"businessHours"`
	Locations     []Location      `json:"locations"`
	Policies      Policies        `json:"policies"`
	Branding      Branding        `json:"branding"`
}

func (p BusinessProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("business name is required")
	}
	if err := p.ContactInfo.Validate(); err != nil {
		return err
	}
	if err := p.Address.Validate(); err != nil {
		return err
	}
	for _, hours := range p.BusinessHours {
		if err := hours.Validate(); err != nil {
			return fmt.Errorf("business hours day %d: %w", hours.DayOfWeek, err)
		}
	}
	defaults := 0
	for _, location := range p.Locations {
		if err := location.Validate(); err != nil {
			return err
		}
		if location.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("at most one location may be the default")
	}
	return p.Branding.Validate()
}

// Clone returns a copy with its own BusinessHours and Locations backing
// arrays, so in-place edits to one copy never reach the other.
func (p BusinessProfile) Clone() BusinessProfile {
	clone := p
	if p.BusinessHours != nil {
		clone.BusinessHours = make([]BusinessHours, len(p.BusinessHours))
		copy(clone.BusinessHours, p.BusinessHours)
	}
	if p.Locations != nil {
		clone.Locations = make([]Location, len(p.Locations))
		copy(clone.Locations, p.Locations)
	}
	return clone
}

// SetDefaultLocation marks the location with id as default and clears the
// flag everywhere else. It returns false when id is not in the list.
func (p *BusinessProfile) SetDefaultLocation(id string) bool {
	found := false
	for i := range p.Locations {
		if p.Locations[i].ID == id {
			found = true
		}
	}
	if !found {
		return false
	}
	for i := range p.Locations {
		p.Locations[i].IsDefault = p.Locations[i].ID == id
	}
	return true
}

// RemoveLocation deletes the location with id. When the removed location
// was the default, the first remaining location is promoted.
func (p *BusinessProfile) RemoveLocation(id string) bool {
	removedDefault := false
	remaining := make([]Location, 0, len(p.Locations))
	for _, location := range p.Locations {
		if location.ID == id {
			removedDefault = location.IsDefault
			continue
		}
		remaining = append(remaining, location)
	}
	if len(remaining) == len(p.Locations) {
		return false
	}
	if removedDefault && len(remaining) > 0 {
		remaining[0].IsDefault = true
	}
	p.Locations = remaining
	return true
}

// DefaultBusinessHours is Monday through Friday, 9AM to 5PM.
func DefaultBusinessHours() []BusinessHours {
	hours := make([]BusinessHours, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, BusinessHours{
			DayOfWeek: day,
			IsOpen:    day >= 1 && day <= 5,
			OpenTime:  "09:00",
			CloseTime: "17:00",
		})
	}
	return hours
}

// DefaultBusinessProfile returns the blank starting profile. It does not
// pass Validate; the operator fills in required fields before saving.
func DefaultBusinessProfile() BusinessProfile {
	return BusinessProfile{
		BusinessHours: DefaultBusinessHours(),
		Locations:     []Location{},
		Branding: Branding{
			PrimaryColor:   defaultBrandingPrimary,
			SecondaryColor: defaultBrandingSecondary,
			FontFamily:     defaultBrandingFont,
		},
	}
}
