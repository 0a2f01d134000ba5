package http

import (
	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/business"

	"github.com/labstack/echo/v4"
)

type BusinessHandler struct{ uc *business.Usecase }

func NewBusinessHandler(uc *business.Usecase) *BusinessHandler { return &BusinessHandler{uc: uc} }

type createBusinessReq struct {
	Name *string `json:"name" validate:"required,min=1"`
}

// List answers every business, or the one named by ?id= (absent if unknown).
func (h *BusinessHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	tenant := middleware.BusinessID(c)

	if id := c.QueryParam("id"); id != "" {
		b, err := h.uc.Get(ctx, tenant, id)
		if err != nil {
			return writeError(c, err)
		}
		if b == nil {
			return response.OK(c, nil)
		}
		return response.OK(c, b)
	}

	list, err := h.uc.List(ctx, tenant)
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, list)
}

func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, "Missing business name", ToFieldErrors(err))
	}
	b, err := h.uc.Create(c.Request().Context(), *req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return response.Created(c, b)
}
