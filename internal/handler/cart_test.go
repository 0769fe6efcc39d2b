package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecommerce/storefront/internal/service"
	"github.com/vibecommerce/storefront/internal/store"
)

func setupCart(t *testing.T) (*echo.Echo, *CartHandler) {
	t.Helper()
	catalog := store.NewMemoryCatalog()
	catalog.SeedDefaults()
	svc := service.NewCartService(store.NewMemoryCartStore(), catalog)
	return echo.New(), NewCartHandler(svc)
}

func doJSON(e *echo.Echo, method, target, body string, fn echo.HandlerFunc, params ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	_ = fn(c)
	return rec
}

func TestCartHandler_AddAndView(t *testing.T) {
	e, h := setupCart(t)

	rec := doJSON(e, http.MethodPost, "/cart", `{"ownerId":"u1","itemId":1,"quantity":2}`, h.Add)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item added to cart")

	rec = doJSON(e, http.MethodPost, "/cart", `{"ownerId":"u1","itemId":4,"quantity":1}`, h.Add)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/cart/u1", "", h.View, "ownerId", "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			ID        string  `json:"id"`
			ProductID int64   `json:"productId"`
			Quantity  int     `json:"quantity"`
			Name      string  `json:"name"`
			Price     float64 `json:"price"`
			Subtotal  float64 `json:"subtotal"`
		} `json:"items"`
		Total string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Wireless Headphones", resp.Items[0].Name)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.InDelta(t, 199.98, resp.Items[0].Subtotal, 1e-9)
	assert.Equal(t, "212.97", resp.Total)
}

func TestCartHandler_RepeatAddMerges(t *testing.T) {
	e, h := setupCart(t)

	for i := 0; i < 3; i++ {
		rec := doJSON(e, http.MethodPost, "/cart", `{"ownerId":"u1","itemId":4,"quantity":1}`, h.Add)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/cart/u1", "", h.View, "ownerId", "u1")
	var resp struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
}

func TestCartHandler_AddValidation(t *testing.T) {
	e, h := setupCart(t)

	rec := doJSON(e, http.MethodPost, "/cart", `{"ownerId":"","itemId":1,"quantity":1}`, h.Add)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/cart", `{"ownerId":"u1","itemId":1,"quantity":0}`, h.Add)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/cart", `not json`, h.Add)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_ViewEmptyCart(t *testing.T) {
	e, h := setupCart(t)

	rec := doJSON(e, http.MethodGet, "/cart/ghost", "", h.View, "ownerId", "ghost")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":"0.00"}`, rec.Body.String())
}

func TestCartHandler_RemoveLine(t *testing.T) {
	e, h := setupCart(t)

	rec := doJSON(e, http.MethodPost, "/cart", `{"ownerId":"u1","itemId":1,"quantity":1}`, h.Add)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/cart/u1", "", h.View, "ownerId", "u1")
	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)

	rec = doJSON(e, http.MethodDelete, "/cart/"+resp.Items[0].ID, "", h.Remove, "id", resp.Items[0].ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item removed from cart")

	// Removing the same line again still succeeds.
	rec = doJSON(e, http.MethodDelete, "/cart/"+resp.Items[0].ID, "", h.Remove, "id", resp.Items[0].ID)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/cart/u1", "", h.View, "ownerId", "u1")
	assert.JSONEq(t, `{"items":[],"total":"0.00"}`, rec.Body.String())
}
