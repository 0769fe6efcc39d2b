package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/service"
)

// CheckoutHandler settles carts into orders and lists past orders.
type CheckoutHandler struct {
	Checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Checkout: checkout}
}

type checkoutItemReq struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price"`
	Subtotal *float64 `json:"subtotal"`
}

type checkoutReq struct {
	OwnerID      string             `json:"ownerId"`
	CartItems    []checkoutItemReq  `json:"cartItems"`
	CustomerInfo model.CustomerInfo `json:"customerInfo"`
}

// Settle handles POST /checkout. The caller submits its priced cart view;
// settlement validates it, issues the order and clears the owner's cart.
func (h *CheckoutHandler) Settle(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ownerId is required"})
	}
	lines := make([]service.CheckoutLine, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		lines = append(lines, service.CheckoutLine{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal,
		})
	}

	order, err := h.Checkout.Settle(c.Request().Context(), req.OwnerID, lines, req.CustomerInfo)
	if err != nil {
		if errors.Is(err, model.ErrEmptyCart) || errors.Is(err, model.ErrMalformedCart) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}
	return c.JSON(http.StatusOK, renderOrder(order, "Checkout successful"))
}

// Orders handles GET /orders/:ownerId and returns past receipts, newest first.
func (h *CheckoutHandler) Orders(c echo.Context) error {
	ownerID := c.Param("ownerId")
	if ownerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ownerId is required"})
	}
	orders, err := h.Checkout.OrdersFor(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load orders"})
	}
	items := make([]echo.Map, 0, len(orders))
	for i := range orders {
		items = append(items, renderOrder(&orders[i], ""))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// renderOrder is the one place order money fields get their 2-decimal
// presentation rounding.
func renderOrder(o *model.Order, message string) echo.Map {
	out := echo.Map{
		"orderId":       o.Ref,
		"customerInfo":  o.Customer,
		"items":         o.Items,
		"subtotal":      money(o.Subtotal),
		"tax":           money(o.Tax),
		"total":         money(o.Total),
		"timestamp":     o.CreatedAt.Format(time.RFC3339),
		"paymentMethod": o.PaymentMethod,
		"status":        o.Status,
	}
	if message != "" {
		out["message"] = message
	}
	return out
}
