package http

import (
	"credit-backoffice/internal/adapter/middleware"
	"credit-backoffice/internal/adapter/response"
	"credit-backoffice/internal/usecase/product"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct{ uc *product.Usecase }

func NewProductHandler(uc *product.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type createProductReq struct {
	Name  *string  `json:"name"  validate:"required,min=1"`
	Stock *int     `json:"stock" validate:"required,gte=0"`
	Price *float64 `json:"price" validate:"required,gte=0,dec2"`
}

// List is filtered, not narrowed: ?id= still answers a list.
func (h *ProductHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context(), middleware.BusinessID(c), c.QueryParam("id"))
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, list)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, "Missing product fields", ToFieldErrors(err))
	}
	p, err := h.uc.Create(c.Request().Context(), product.CreateInput{
		BusinessID: middleware.BusinessID(c),
		Name:       *req.Name,
		Stock:      req.Stock,
		Price:      req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.Created(c, p)
}
