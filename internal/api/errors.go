package api

import (
	"errors"
	"fmt"
	"net/http"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error kinds reported in the error envelope.
const (
	ErrKindValidation   = "VALIDATION_ERROR"
	ErrKindUserNotFound = "USER_NOT_FOUND"
	ErrKindPlanNotFound = "PLAN_NOT_FOUND"
	ErrKindDuplicateKey = "DUPLICATE_KEY"
	ErrKindServer       = "SERVER_ERROR"
)

// ErrorResponse is the single error envelope used by every endpoint.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// UserResponse wraps successful user-endpoint payloads.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

func respondError(c *gin.Context, status int, kind, message string, details []string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Error:   kind,
		Details: details,
	})
}

func respondValidationError(c *gin.Context, message string, details []string) {
	respondError(c, http.StatusBadRequest, ErrKindValidation, message, details)
}

// respondServiceError maps a service-layer error onto the envelope. Every
// internal failure ends up here; nothing propagates past the HTTP layer.
func respondServiceError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondValidationError(c, "Validation failed", verr.Problems)
		return
	}

	var dup *repository.DuplicateKeyError
	if errors.As(err, &dup) {
		field := dup.Field
		if field == "" {
			field = "unique field"
		}
		respondError(c, http.StatusConflict, ErrKindDuplicateKey,
			fmt.Sprintf("User with this %s already exists", field), nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, ErrKindUserNotFound, "User not found", nil)
	case errors.Is(err, service.ErrPlanNotFound):
		respondError(c, http.StatusNotFound, ErrKindPlanNotFound, "Workout plan not found", nil)
	case errors.Is(err, service.ErrInvalidContentType):
		respondValidationError(c, err.Error(), nil)
	default:
		logrus.WithError(err).Error("unhandled service error")
		respondError(c, http.StatusInternalServerError, ErrKindServer, "Internal server error", nil)
	}
}
