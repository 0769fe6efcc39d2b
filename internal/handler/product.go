package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/service"
)

// ProductHandler serves the public catalog listing.
type ProductHandler struct {
	Catalog service.Catalog
}

func NewProductHandler(catalog service.Catalog) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

// List handles GET /products and returns the whole catalog.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.Catalog.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load products"})
	}
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(http.StatusOK, products)
}
