package middleware

import (
	"net/http"
	"strings"

	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

const (
	HeaderBusinessID = "x-business-id"
	businessIDKey    = "business_id"
)

// Tenant resolves the business a request acts for: the x-business-id header,
// else defaultID. With neither it answers 400 and the handler never runs.
func Tenant(defaultID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(HeaderBusinessID))
			if id == "" {
				id = defaultID
			}
			if id == "" {
				return response.Fail(c, http.StatusBadRequest, apperr.ErrMissingTenant.Error())
			}
			c.Set(businessIDKey, id)
			return next(c)
		}
	}
}

// BusinessID returns the tenant set by Tenant, or "" outside it.
func BusinessID(c echo.Context) string {
	id, _ := c.Get(businessIDKey).(string)
	return id
}
