package errorhandler

import (
	"context"
	"net/http"

	"github.com/turismo/backoffice-console/internal/pkg/logger"
	"github.com/turismo/backoffice-console/internal/pkg/response"
)

// HandleError logs a failed screen interaction and sends it with the toasts
// the screen raised.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error, notifications interface{}) {
	l := logger.FromContext(ctx)
	event := l.Error()
	if status < http.StatusInternalServerError {
		event = l.Warn()
	}
	event.
		Str("error_code", code).
		Str("error_message", message).
		Int("status_code", status)

	if err != nil {
		event.Err(err)
	}
	event.Msg("Request error")

	response.ScreenError(w, status, code, message, nil, notifications)
}

// HandleValidationError sends a rejected form with its field messages.
func HandleValidationError(ctx context.Context, w http.ResponseWriter, message string, fieldErrors map[string]string, notifications interface{}) {
	logger.FromContext(ctx).Warn().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")

	response.ScreenError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, fieldErrors, notifications)
}

// LogBackendError logs a failed call to the tourism backend.
func LogBackendError(ctx context.Context, resource, operation string, err error) {
	logger.FromContext(ctx).Error().
		Str("resource", resource).
		Str("operation", operation).
		Err(err).
		Msg("Backend error")
}
