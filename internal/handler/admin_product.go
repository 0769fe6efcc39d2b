package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/service"
)

// AdminProductHandler covers product administration. All routes sit behind
// JWT auth with the ADMIN role.
type AdminProductHandler struct {
	Catalog service.Catalog
}

func NewAdminProductHandler(catalog service.Catalog) *AdminProductHandler {
	return &AdminProductHandler{Catalog: catalog}
}

type productReq struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

func (r *productReq) validate() (string, float64, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" || r.Price == nil || *r.Price < 0 {
		return "", 0, false
	}
	return name, *r.Price, true
}

// Create handles POST /admin/products. Product ids are issued sequentially.
func (h *AdminProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name, price, ok := req.validate()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and non-negative price required"})
	}
	p := model.Product{Name: name, Price: price}
	if err := h.Catalog.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product created", "product": p})
}

// Update handles PUT /admin/products/:id.
func (h *AdminProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name, price, ok := req.validate()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and non-negative price required"})
	}
	if err := h.Catalog.Update(c.Request().Context(), model.Product{ID: id, Name: name, Price: price}); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product updated"})
}

// Delete handles DELETE /admin/products/:id. Cart lines still pointing at a
// deleted product simply disappear from priced views.
func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Catalog.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}
