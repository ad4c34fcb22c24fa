// internal/models/settings.go
package models

import "fmt"

// Settings holds the general UI preferences: theme, formats, and
// accessibility options. Each field is presentation-only.
type Settings struct {
	ThemeColor          string  `json:"themeColor"`
	ThemeMode           string  `json:"themeMode"`
	ViewMode            string  `json:"viewMode"`
	TimeFormat          string  `json:"timeFormat"`
	DateFormat          string  `json:"dateFormat"`
	ShowWeekends        bool    `json:"showWeekends"`
	EnableNotifications bool    `json:"enableNotifications"`
	FontScale           float64 `json:"fontScale"`
	BorderRadius        float64 `json:"borderRadius"`
	Animations          bool    `json:"animations"`
	CompactView         bool    `json:"compactView"`
}

var (
	validThemeColors = map[string]bool{
		"lime": true, "green": true, "blue": true, "violet": true,
		"orange": true, "red": true, "neutral": true,
	}
	validThemeModes  = map[string]bool{"light": true, "dark": true, "system": true}
	validViewModes   = map[string]bool{"card": true, "list": true, "compact": true}
	validTimeFormats = map[string]bool{"12h": true, "24h": true}
	validDateFormats = map[string]bool{
		"MM/DD/YYYY": true, "DD/MM/YYYY": true, "YYYY-MM-DD": true,
	}
)

func (s Settings) Validate() error {
	if !validThemeColors[s.ThemeColor] {
		return fmt.Errorf("themeColor %q is not a known theme color", s.ThemeColor)
	}
	if !validThemeModes[s.ThemeMode] {
		return fmt.Errorf("themeMode must be light, dark, or system")
	}
	if !validViewModes[s.ViewMode] {
		return fmt.Errorf("viewMode must be card, list, or compact")
	}
	if !validTimeFormats[s.TimeFormat] {
		return fmt.Errorf("timeFormat must be 12h or 24h")
	}
	if !validDateFormats[s.DateFormat] {
		return fmt.Errorf("dateFormat %q is not a known date format", s.DateFormat)
	}
	if s.FontScale < 0.8 || s.FontScale > 1.2 {
		return fmt.Errorf("fontScale must be between 0.8 and 1.2")
	}
	if s.BorderRadius < 0.5 || s.BorderRadius > 2 {
		return fmt.Errorf("borderRadius must be between 0.5 and 2")
	}
	return nil
}

func DefaultSettings() Settings {
	return Settings{
		ThemeColor:          "lime",
		ThemeMode:           "system",
		ViewMode:            "card",
		TimeFormat:          "12h",
		DateFormat:          "MM/DD/YYYY",
		ShowWeekends:        false,
		EnableNotifications: true,
		FontScale:           1,
		BorderRadius:        1,
		Animations:          true,
		CompactView:         false,
	}
}
