package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/pkg/apperrors"
	"github.com/uniconnect/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses.
// All error bodies are a plain JSON {message}.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Student not found"))
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("College not found"))
	case errors.Is(err, apperrors.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Event not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrRegNumberAlreadyTaken):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Registration number already exists"))
	case errors.Is(err, apperrors.ErrCollegeCodeTaken):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("University code already exists"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Invalid refresh token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse("Permission denied"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal server error"))
	}
}
