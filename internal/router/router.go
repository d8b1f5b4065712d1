package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/NOBU6477/tomotrip-platform/internal/handler" // import the handlers that implement business logic
	"github.com/NOBU6477/tomotrip-platform/internal/middleware"
	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check and the API index.  The
// health check answers on both /health and /api/health so it wins over
// the SPA fallback.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
	e.GET("/api/health", handler.Health)
	e.GET("/api", handler.APIInfo)
}

// RegisterAuth registers all authentication-related routes.  The session
// endpoints carry their own bearer session token and validate it against
// storage; only /me sits behind the JWT access-token middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/session", a.Session)
	g.POST("/logout", a.Logout)
	g.GET("/dashboard", a.Dashboard)
	g.GET("/me", a.Me,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireUserType(model.UserTypeSponsor, model.UserTypeStoreOwner))
}

// NotFoundHandler answers unknown /api paths with a JSON body listing the
// endpoint groups, instead of Echo's default payload.  Non-API paths fall
// back to the SPA entry page when one is configured.
func NotFoundHandler(publicIndex string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		if c.Response().Committed {
			return
		}

		if he.Code == http.StatusNotFound {
			path := c.Request().URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				_ = c.JSON(http.StatusNotFound, echo.Map{
					"error": "endpoint not found",
					"availableEndpoints": []string{
						"/health",
						"/api/health",
						"/api/auth",
						"/api/sponsor-stores",
						"/api/tourism-guides",
						"/api/experience-programs",
						"/api/reservations",
						"/api/reviews",
					},
				})
				return
			}
			if publicIndex != "" {
				_ = c.File(publicIndex)
				return
			}
		}

		msg := he.Message
		if _, ok := msg.(string); !ok {
			msg = http.StatusText(he.Code)
		}
		_ = c.JSON(he.Code, echo.Map{"error": msg})
	}
}
