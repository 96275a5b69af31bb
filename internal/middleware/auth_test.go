package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"quill/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789-0123456789"

func signToken(t *testing.T, userID uint, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return str
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app := fiber.New()
	app.Get("/protected/", LoginRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	app.Get("/public/", OptionalAuth, func(c *fiber.Ctx) error {
		if id, ok := c.Locals("userID").(uint); ok {
			return c.JSON(fiber.Map{"user_id": id})
		}
		return c.JSON(fiber.Map{"user_id": nil})
	})
	return app
}

func TestLoginRequired_RedirectsGuests(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login/?next=%2Fprotected%2F", resp.Header.Get("Location"))
}

func TestLoginRequired_AcceptsBearerToken(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42, testSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRequired_AcceptsCookieToken(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, 42, testSecret)})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRequired_RejectsWrongSecret(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42, "wrong-secret-0123456789-012345678"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode, "bad token redirects like a guest")
}

func TestLoginRequired_RejectsExpiredToken(t *testing.T) {
	app := newAuthTestApp(t)

	claims := jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+str)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestOptionalAuth_GuestContinues(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/public/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
