package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecommerce/storefront/internal/utils"
)

func runGuarded(t *testing.T, secret, authHeader string, roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	if len(roles) > 0 {
		h = RequireRole(roles...)(h)
	}
	_ = JWTAuth(secret)(h)(c)
	return rec
}

func TestJWTAuth_ValidTokenPasses(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 1, "ADMIN", 60)
	require.NoError(t, err)

	rec := runGuarded(t, "secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec := runGuarded(t, "secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, "ADMIN", 60)
	require.NoError(t, err)

	rec := runGuarded(t, "secret", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	rec := runGuarded(t, "secret", "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_AdminOnly(t *testing.T) {
	admin, err := utils.NewAccessToken("secret", 1, "ADMIN", 60)
	require.NoError(t, err)
	shopper, err := utils.NewAccessToken("secret", 2, "USER", 60)
	require.NoError(t, err)

	rec := runGuarded(t, "secret", "Bearer "+admin.Token, "ADMIN")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = runGuarded(t, "secret", "Bearer "+shopper.Token, "ADMIN")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
