package http

import (
	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/balance"

	"github.com/labstack/echo/v4"
)

type BalanceHandler struct{ uc *balance.Usecase }

func NewBalanceHandler(uc *balance.Usecase) *BalanceHandler { return &BalanceHandler{uc: uc} }

type adjustBalanceReq struct {
	CustomerID string   `json:"customer_id"`
	Amount     *float64 `json:"amount"`
}

func (h *BalanceHandler) Get(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), middleware.BusinessID(c), c.QueryParam("customer_id"))
	if err != nil {
		return writeError(c, err)
	}
	if b == nil {
		return response.OK(c, nil)
	}
	return response.OK(c, b)
}

func (h *BalanceHandler) Adjust(c echo.Context) error {
	var req adjustBalanceReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	b, err := h.uc.Adjust(c.Request().Context(), balance.AdjustInput{
		BusinessID: middleware.BusinessID(c),
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, b)
}
