package http

import (
	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/purchase"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct{ uc *purchase.Usecase }

func NewPurchaseHandler(uc *purchase.Usecase) *PurchaseHandler { return &PurchaseHandler{uc: uc} }

func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var in purchase.Input
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	in.BusinessID = middleware.BusinessID(c)

	out, err := h.uc.Process(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return response.Created(c, out)
}
