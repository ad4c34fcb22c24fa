// internal/models/phone.go
package models

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "US"

// IsPhoneNumber reports whether raw looks like a dialable phone number.
// Anything containing an @ is treated as an email address, not a phone.
func IsPhoneNumber(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "@") {
		return false
	}
	parsed, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(parsed)
}

// NormalizePhone converts raw to E.164 form. Input that cannot be parsed
// as a phone number is returned unchanged so callers can surface it.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	parsed, err := phonenumbers.Parse(trimmed, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
