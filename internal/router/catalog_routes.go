package router

import (
	"github.com/labstack/echo/v4"

	"github.com/NOBU6477/tomotrip-platform/internal/handler"
)

// RegisterCatalog registers the public guide catalog endpoints.  The page
// and card-fragment routes optionally sit behind the response cache; the
// action dispatcher and refresh endpoints never do, since they mutate
// catalog state.
func RegisterCatalog(e *echo.Echo, c *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	read := []echo.MiddlewareFunc{}
	if cache != nil {
		read = append(read, cache)
	}
	e.GET("/guides", c.GetPage, read...)
	e.GET("/guides/cards", c.GetCards, read...)
	e.POST("/guides/actions", c.DispatchAction)
	e.POST("/guides/refresh", c.RefreshCatalog)
}

// RegisterStatic serves the public assets directory when it is configured.
func RegisterStatic(e *echo.Echo, publicDir string) {
	if publicDir != "" {
		e.Static("/", publicDir)
	}
}
