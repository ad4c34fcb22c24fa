package availability

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/apatelabs/apate/internal/kv"
	"github.com/apatelabs/apate/internal/models"
	"github.com/apatelabs/apate/internal/store"
)

func setupAvailabilityTest(t *testing.T) {
	t.Helper()

	memory := kv.NewMemoryStore()
	availabilityStore = nil
	storeOnce = sync.Once{}
	InitHandlers(store.NewAvailabilityStore(memory))
}

func TestHandleGetDefaults(t *testing.T) {
	setupAvailabilityTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	recorder := httptest.NewRecorder()
	HandleGet(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	var settings models.AvailabilitySettings
	if err := json.Unmarshal(recorder.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.AppointmentDuration != 60 || settings.WorkHours.Start != "09:00" {
		t.Errorf("defaults = %+v", settings)
	}
}

func TestHandleSave(t *testing.T) {
	setupAvailabilityTest(t)

	body := `{"workDays":[2,4],"workHours":{"start":"10:00","end":"14:00"},"appointmentDuration":30,"bufferTime":0,"maxDaysInAdvance":14,"timeSlotInterval":30}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/availability", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleSave(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", recorder.Code, recorder.Body.String())
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	getRecorder := httptest.NewRecorder()
	HandleGet(getRecorder, getReq)

	var settings models.AvailabilitySettings
	if err := json.Unmarshal(getRecorder.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.WorkHours.End != "14:00" || len(settings.WorkDays) != 2 {
		t.Errorf("saved settings = %+v", settings)
	}
}

func TestHandleSaveValidation(t *testing.T) {
	setupAvailabilityTest(t)

	body := `{"workDays":[9],"workHours":{"start":"09:00","end":"17:00"},"appointmentDuration":60,"bufferTime":15,"maxDaysInAdvance":60,"timeSlotInterval":30}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/availability", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleSave(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestHandleGeneratedSlots(t *testing.T) {
	setupAvailabilityTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots", nil)
	recorder := httptest.NewRecorder()
	HandleGeneratedSlots(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	var slots []string
	if err := json.Unmarshal(recorder.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("no slots generated from default settings")
	}
	if slots[0] != "9:00 AM" {
		t.Errorf("first slot = %q, want 9:00 AM", slots[0])
	}
}

func TestHandleReset(t *testing.T) {
	setupAvailabilityTest(t)

	body := `{"workDays":[2],"workHours":{"start":"10:00","end":"14:00"},"appointmentDuration":30,"bufferTime":0,"maxDaysInAdvance":14,"timeSlotInterval":30}`
	saveReq := httptest.NewRequest(http.MethodPut, "/api/v1/availability", strings.NewReader(body))
	HandleSave(httptest.NewRecorder(), saveReq)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/availability/reset", nil)
	recorder := httptest.NewRecorder()
	HandleReset(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	var settings models.AvailabilitySettings
	if err := json.Unmarshal(recorder.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.AppointmentDuration != 60 {
		t.Errorf("appointmentDuration = %d after reset, want 60", settings.AppointmentDuration)
	}
}
