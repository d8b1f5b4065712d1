package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject and user-type claims into the request
// context.  The secret must match the one used when issuing tokens.
// Handlers behind this middleware read the authenticated identity via
// c.Get("user_id") and c.Get("user_type").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Only HS256 tokens are issued, so any other signing method
			// is rejected before the secret is consulted.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			c.Set("user_id", claims["sub"])
			c.Set("user_type", claims["user_type"])
			return next(c)
		}
	}
}

// RequireUserType enforces that the authenticated user's type is one of
// the allowed set.  JWTAuth must run earlier in the chain.
func RequireUserType(types ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, ok := c.Get("user_type").(string)
			if !ok || !allowed[v] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
