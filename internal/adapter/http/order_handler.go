package http

import (
	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/order"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct{ uc *order.Usecase }

func NewOrderHandler(uc *order.Usecase) *OrderHandler { return &OrderHandler{uc: uc} }

// List answers the tenant's orders newest first, or with ?id= the single
// order including its items.
func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	tenant := middleware.BusinessID(c)

	if id := c.QueryParam("id"); id != "" {
		o, err := h.uc.Get(ctx, tenant, id)
		if err != nil {
			return writeError(c, err)
		}
		if o == nil {
			return response.OK(c, nil)
		}
		return response.OK(c, o)
	}

	list, err := h.uc.List(ctx, tenant)
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, list)
}
