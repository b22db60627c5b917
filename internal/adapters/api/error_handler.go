package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "mailmerge.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// handleError maps the innermost meaningful error type to an HTTP status.
// MERGE_ERROR wrappers are looked through so the cause decides the status.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	errType := appErr.Type
	if errType == errorspkg.MergeError {
		if cause := errorspkg.TypeOf(appErr.Cause); cause != errorspkg.ErrorTypeUnknown {
			errType = cause
		}
	}

	var statusCode int
	var message string

	switch errType {
	case errorspkg.ValidationError, errorspkg.ConfigurationError, errorspkg.SubstitutionError:
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errorspkg.LoadError:
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ConnectionError:
		statusCode = http.StatusBadGateway
		message = "Unable to connect to the email service"
	case errorspkg.SendError:
		statusCode = http.StatusBadGateway
		message = "Unable to send email"
	case errorspkg.PermissionDeniedError, errorspkg.DatabaseError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "path", c.FullPath())
	}

	c.JSON(statusCode, ErrorResponse{Error: message, Type: errType.String()})
}
