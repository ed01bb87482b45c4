package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", ctx.Locals("admin_id")))
	})
	return app
}

func signAdminToken(t *testing.T, secret []byte) string {
	t.Helper()
	claims := jwt.MapClaims{
		"admin_id": "7b8a2f1c-0000-4000-8000-000000000001",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)
	return token
}

// The login signer and the middleware keyfunc must share one secret
// source, including the fallback when JWT_SECRET is not configured.
func TestJwtMiddlewareAcceptsTokenFromSharedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	app := newProtectedApp()
	token := signAdminToken(t, JwtSecret())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareHonorsConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	app := newProtectedApp()
	token := signAdminToken(t, JwtSecret())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	app := newProtectedApp()
	token := signAdminToken(t, []byte("some-other-secret"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
