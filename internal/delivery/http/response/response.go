// Package response holds the JSON shapes of the public API. The error body
// is always `{"error": "<message>"}`; success bodies are endpoint-specific
// and constructed by the handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error response shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKBody is the mutation acknowledgement shape.
type OKBody struct {
	OK           bool `json:"ok"`
	Deduplicated bool `json:"deduplicated,omitempty"`
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// OK writes `{"ok":true}`.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, OKBody{OK: true})
}

// OKDeduplicated writes `{"ok":true,"deduplicated":true}`.
func OKDeduplicated(c echo.Context) error {
	return c.JSON(http.StatusOK, OKBody{OK: true, Deduplicated: true})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}
