package sharelink

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	url, err := Encode("http://localhost:8080", "abc-123")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/book?") {
		t.Errorf("url = %q, want /book path on base", url)
	}

	link, ok := Decode(url)
	if !ok {
		t.Fatal("Decode returned ok=false for an encoded URL")
	}
	if link.AppointmentID != "abc-123" {
		t.Errorf("id = %q, want %q", link.AppointmentID, "abc-123")
	}
	if !link.IsShared {
		t.Error("IsShared = false, want true")
	}
}

func TestEncodeEscapesIdentifier(t *testing.T) {
	url, err := Encode("http://localhost:8080", "id with spaces&=")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	link, ok := Decode(url)
	if !ok {
		t.Fatal("Decode returned ok=false")
	}
	if link.AppointmentID != "id with spaces&=" {
		t.Errorf("id = %q, round trip must preserve the identifier", link.AppointmentID)
	}
}

func TestEncodeRequiresID(t *testing.T) {
	if _, err := Encode("http://localhost:8080", "  "); err == nil {
		t.Error("expected error for blank id")
	}
}

func TestDecodeWithoutID(t *testing.T) {
	if _, ok := Decode("http://localhost:8080/book?share=true"); ok {
		t.Error("Decode returned ok=true without an id")
	}
	if _, ok := Decode("http://localhost:8080/"); ok {
		t.Error("Decode returned ok=true for a bare URL")
	}
}

func TestDecodeShareFlagVariants(t *testing.T) {
	link, ok := Decode("http://localhost:8080/book?id=x")
	if !ok {
		t.Fatal("Decode returned ok=false with id present")
	}
	if link.IsShared {
		t.Error("IsShared = true without share param")
	}

	link, ok = Decode("http://localhost:8080/book?id=x&share=false")
	if !ok {
		t.Fatal("Decode returned ok=false")
	}
	if link.IsShared {
		t.Error("IsShared = true for share=false")
	}
}
