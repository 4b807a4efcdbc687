package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uniconnect/backend/internal/app/models"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
	"github.com/uniconnect/backend/internal/pkg/auth"
)

const eventJSON = `{
	"title": "AI Workshop",
	"description": "Hands-on sessions",
	"type": "workshop",
	"mode": "hybrid",
	"startDate": "2026-09-01",
	"startTime": "10:00",
	"venue": "Tech Lab",
	"registrationLink": "https://example.edu/ai",
	"collegeId": 1
}`

func TestEventListPassesQueryFilter(t *testing.T) {
	env := newTestEnv(t)
	env.events.listFn = func(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error) {
		want := dto.EventFilter{Search: "ai", Type: "workshop", Mode: "hybrid", Location: "cambridge"}
		if filter != want {
			t.Fatalf("filter = %+v, want %+v", filter, want)
		}
		return []*models.Event{{ID: 1, Title: "AI Workshop"}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events?search=ai&type=workshop&mode=hybrid&location=cambridge", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var events []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &events); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestEventListEmptyResultIsJSONArray(t *testing.T) {
	env := newTestEnv(t)
	env.events.listFn = func(ctx context.Context, filter dto.EventFilter) ([]*models.Event, error) {
		return []*models.Event{}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("body = %q, want empty array", resp.Body.String())
	}
}

func TestEventGetByIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.events.getByIDFn = func(ctx context.Context, id int64) (*models.Event, error) {
		return nil, apperrors.ErrEventNotFound
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events/5", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	if msg := decodeMessage(t, resp); msg != "Event not found" {
		t.Fatalf("message = %q", msg)
	}
}

func TestEventCreateRequiresCollegeRole(t *testing.T) {
	env := newTestEnv(t)

	// No token
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(eventJSON))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", resp.Code)
	}

	// Student token
	req = httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(eventJSON))
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleStudent))
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("student token: status = %d, want 403", resp.Code)
	}
}

func TestEventCreateAsCollege(t *testing.T) {
	env := newTestEnv(t)
	env.events.createFn = func(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error) {
		if callerCollegeID != 1 {
			t.Fatalf("callerCollegeID = %d, want 1", callerCollegeID)
		}
		return &models.Event{ID: 10, Title: req.Title, CollegeID: req.CollegeID}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(eventJSON))
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"id":10`) {
		t.Fatalf("created event missing: %s", resp.Body.String())
	}
}

func TestEventCreateForOtherCollege(t *testing.T) {
	env := newTestEnv(t)
	env.events.createFn = func(ctx context.Context, callerCollegeID int64, req *dto.CreateEventRequest) (*models.Event, error) {
		return nil, apperrors.ErrPermissionDenied
	}

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(eventJSON))
	req.Header.Set("Authorization", env.bearerToken(t, 2, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.Code)
	}
	if msg := decodeMessage(t, resp); msg != "Permission denied" {
		t.Fatalf("message = %q", msg)
	}
}

func TestEventCreateMissingFields(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"title":"AI Workshop"}`))
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestEventUpdateAsOwner(t *testing.T) {
	env := newTestEnv(t)
	env.events.updateFn = func(ctx context.Context, id, callerCollegeID int64, updates *dto.UpdateEventRequest) (*models.Event, error) {
		if id != 5 || callerCollegeID != 1 {
			t.Fatalf("unexpected call: id=%d caller=%d", id, callerCollegeID)
		}
		return &models.Event{ID: 5, Title: *updates.Title, CollegeID: 1}, nil
	}

	req := httptest.NewRequest(http.MethodPut, "/api/events/5", strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"title":"Renamed"`) {
		t.Fatalf("updated title missing: %s", resp.Body.String())
	}
}

func TestEventDeleteReturnsMessage(t *testing.T) {
	env := newTestEnv(t)
	env.events.deleteFn = func(ctx context.Context, id, callerCollegeID int64) error {
		if id != 5 || callerCollegeID != 1 {
			t.Fatalf("unexpected call: id=%d caller=%d", id, callerCollegeID)
		}
		return nil
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/events/5", nil)
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if msg := decodeMessage(t, resp); msg != "Event deleted successfully" {
		t.Fatalf("message = %q", msg)
	}
}

func TestEventDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.events.deleteFn = func(ctx context.Context, id, callerCollegeID int64) error {
		return apperrors.ErrEventNotFound
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/events/5", nil)
	req.Header.Set("Authorization", env.bearerToken(t, 1, auth.RoleCollege))
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}
