// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"net/url"
	"strconv"
	"strings"

	"quill/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// LoginURL is where unauthenticated browsers are sent; the next parameter
// carries the path they were trying to reach.
const LoginURL = "/auth/login/"

// extractToken pulls the JWT from the Authorization header or, for browser
// flows, the token cookie.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies("token")
}

// parseUserID validates the token and returns the user ID from its subject.
func parseUserID(tokenString string) (uint, bool) {
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(userIDVal), true
}

// LoginRequired enforces authentication for protected routes. Guests are
// redirected to the login page with the original path in the next parameter
// instead of receiving an error page.
func LoginRequired(c *fiber.Ctx) error {
	userID, ok := parseUserID(extractToken(c))
	if !ok {
		return c.Redirect(LoginURL+"?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
	}

	c.Locals("userID", userID)
	return c.Next()
}

// OptionalAuth resolves the acting user when a valid token is present and
// continues as a guest otherwise. Used on public pages whose rendering varies
// by viewer, such as the following flag on profiles.
func OptionalAuth(c *fiber.Ctx) error {
	if userID, ok := parseUserID(extractToken(c)); ok {
		c.Locals("userID", userID)
	}
	return c.Next()
}
