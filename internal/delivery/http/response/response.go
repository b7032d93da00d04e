// Package response renders the unified API envelope.
package response

import (
	"net/http"

	deliverycontext "mazza/internal/delivery/context"
	domainerrors "mazza/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success renders a successful response with request metadata.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error renders an error response with request metadata.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError renders a 400 for malformed request payloads.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized renders a 401 error.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// Forbidden renders a 403 error.
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// TooManyRequests renders a 429 error.
func TooManyRequests(c echo.Context, message string) error {
	return Error(c, http.StatusTooManyRequests, "RATE_LIMITED", message, nil)
}
