package httperr

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Validation answers 400 with field-level details attached.
func Validation(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_error",
		Message: message,
		Details: details,
	})
}

// Unexpected logs err, reports it to sentry when a hub is configured and
// answers 500 without exposing the cause.
func Unexpected(c *gin.Context, log *zap.Logger, code string, err error) {
	log.Error("unexpected error",
		zap.String("code", code),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureException(err)
	}

	Internal(c, code, "Something went wrong. Please try again.")
}
