// Package response writes the JSON envelope every endpoint answers with:
// {success, data?, error?, details?}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// OK writes a 200. Pass a nil interface (not a typed nil pointer) to leave
// data out of the body.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}

func Invalid(c echo.Context, msg string, details []FieldError) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: msg, Details: details})
}
