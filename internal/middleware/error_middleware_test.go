package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return resp.Code, body.Message
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
		{"college not found", apperrors.ErrCollegeNotFound, http.StatusNotFound, "College not found"},
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound, "Event not found"},
		{"duplicate reg number", apperrors.ErrRegNumberAlreadyTaken, http.StatusBadRequest, "Registration number already exists"},
		{"duplicate code", apperrors.ErrCollegeCodeTaken, http.StatusBadRequest, "University code already exists"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized, "Invalid refresh token"},
		{"token not found", apperrors.ErrTokenNotFound, http.StatusUnauthorized, "Invalid refresh token"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := runHandleAPIError(t, tc.err)
			if status != tc.wantStatus {
				t.Fatalf("status = %d, want %d", status, tc.wantStatus)
			}
			if message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", message, tc.wantMessage)
			}
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrEventNotFound, "fetch event 5")
	status, message := runHandleAPIError(t, wrapped)
	if status != http.StatusNotFound || message != "Event not found" {
		t.Fatalf("got %d %q", status, message)
	}
}
