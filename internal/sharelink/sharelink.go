// internal/sharelink/sharelink.go

// Package sharelink encodes and decodes appointment share URLs. The
// payload is a pointer to an appointment, not a copy: only the identifier
// and a shared marker travel in the query string.
package sharelink

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	bookPath      = "/book"
	idParam       = "id"
	shareParam    = "share"
	shareParamVal = "true"
)

// Link is the decoded form of a share URL.
type Link struct {
	AppointmentID string
	IsShared      bool
}

// Encode builds a share URL for the appointment identifier on top of
// baseURL (scheme and host, e.g. "http://localhost:8080").
func Encode(baseURL, appointmentID string) (string, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return "", fmt.Errorf("appointment id is required")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set(idParam, appointmentID)
	params.Set(shareParam, shareParamVal)

	base.Path = bookPath
	base.RawQuery = params.Encode()
	return base.String(), nil
}

// Decode extracts the appointment identifier and shared flag from rawURL.
// It returns ok=false when no identifier is present.
func Decode(rawURL string) (Link, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Link{}, false
	}

	params := parsed.Query()
	id := params.Get(idParam)
	if id == "" {
		return Link{}, false
	}

	return Link{
		AppointmentID: id,
		IsShared:      params.Get(shareParam) == shareParamVal,
	}, true
}
