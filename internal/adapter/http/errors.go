package http

import (
	"errors"
	"net/http"

	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/domain/apperr"
	"credit-backoffice/internal/domain/balance"
	"credit-backoffice/internal/usecase/purchase"

	"github.com/labstack/echo/v4"
)

// writeError maps usecase errors onto the envelope. Store failures were
// already logged where they happened and are answered with a generic 500.
func writeError(c echo.Context, err error) error {
	var rejected *purchase.RejectedError
	switch {
	case errors.Is(err, apperr.ErrMissingTenant):
		return response.Fail(c, http.StatusBadRequest, apperr.ErrMissingTenant.Error())
	case errors.As(err, &rejected):
		return response.Fail(c, http.StatusBadRequest, rejected.Reason)
	case errors.Is(err, apperr.ErrInvalidRequest):
		return response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidReference):
		return response.Fail(c, http.StatusBadRequest, apperr.ErrInvalidReference.Error())
	case errors.Is(err, balance.ErrNotFound):
		return response.Fail(c, http.StatusNotFound, "Customer balance not found")
	}
	return response.Fail(c, http.StatusInternalServerError, "Internal server error")
}

func invalidBody(c echo.Context) error {
	return response.Fail(c, http.StatusBadRequest, "invalid body")
}
