package http

import (
	"strconv"
	"strings"

	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/customer"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type createCustomerReq struct {
	Name        *string  `json:"name"         validate:"required,min=1"`
	CreditLimit *float64 `json:"credit_limit" validate:"required,gte=0,dec2"`
}

func (h *CustomerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	tenant := middleware.BusinessID(c)

	if id := c.QueryParam("id"); id != "" {
		cust, err := h.uc.Get(ctx, tenant, id)
		if err != nil {
			return writeError(c, err)
		}
		if cust == nil {
			return response.OK(c, nil)
		}
		return response.OK(c, cust)
	}

	list, err := h.uc.List(ctx, tenant)
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, list)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, "Missing name or credit_limit", ToFieldErrors(err))
	}
	cust, err := h.uc.Create(c.Request().Context(), customer.CreateInput{
		BusinessID:  middleware.BusinessID(c),
		Name:        *req.Name,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.Created(c, cust)
}

// Overdue takes ?days= (default 30).
func (h *CustomerHandler) Overdue(c echo.Context) error {
	days := customer.DefaultOverdueDays
	if raw := strings.TrimSpace(c.QueryParam("days")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.Invalid(c, "days must be a non-negative integer", nil)
		}
		days = n
	}
	list, err := h.uc.Overdue(c.Request().Context(), middleware.BusinessID(c), days)
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, list)
}
