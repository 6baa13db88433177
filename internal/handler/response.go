package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invocr/internal/domain"
)

// RespondOK sends a 200 envelope.
func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, domain.Envelope{ResultCode: http.StatusOK, Message: message, Data: data})
}

// RespondError sends an error envelope with the given status code.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, domain.Envelope{ResultCode: status, Message: message})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
// Processing failures keep the underlying cause in the message; input errors
// get the fixed user-facing diagnostics.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "Please upload a .jpg or .png file"
	case errors.Is(err, domain.ErrInvalidColumnMapping):
		return http.StatusBadRequest, "custom_columns must be valid JSON"
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusBadRequest, "file not found"
	case errors.Is(err, domain.ErrProcessingFailed):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error envelope.
func HandleError(c *gin.Context, log zerolog.Logger, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID := c.GetString("request_id")
		log.Error().Err(err).Str("request_id", requestID).Msg("request failed")
	}
	RespondError(c, status, msg)
}
