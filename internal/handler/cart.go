package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/service"
)

// CartHandler exposes the shopper cart operations.
type CartHandler struct {
	Carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

type addToCartReq struct {
	OwnerID  string `json:"ownerId"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Add handles POST /cart. A repeat add for the same (owner, item) pair
// accumulates into the existing line.
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ownerId is required"})
	}
	if err := h.Carts.Add(c.Request().Context(), req.OwnerID, req.ItemID, req.Quantity); err != nil {
		if errors.Is(err, model.ErrInvalidQuantity) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update cart"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item added to cart"})
}

// Remove handles DELETE /cart/:id. Removing an unknown line succeeds.
func (h *CartHandler) Remove(c echo.Context) error {
	lineID := c.Param("id")
	if lineID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "line id is required"})
	}
	if err := h.Carts.Remove(c.Request().Context(), lineID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove item"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Item removed from cart"})
}

// View handles GET /cart/:ownerId and returns the priced cart.
func (h *CartHandler) View(c echo.Context) error {
	ownerID := c.Param("ownerId")
	if ownerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ownerId is required"})
	}
	view, err := h.Carts.View(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load cart"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": view.Items,
		"total": money(view.GrandTotal),
	})
}
