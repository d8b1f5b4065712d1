package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIInfo describes the service and its top-level endpoint groups so a
// developer hitting /api in a browser gets something useful.
func APIInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":    "TomoTrip Platform API",
		"version": "1.0",
		"endpoints": echo.Map{
			"health":        "/api/health",
			"auth":          "/api/auth",
			"sponsorStores": "/api/sponsor-stores",
			"tourismGuides": "/api/tourism-guides",
			"programs":      "/api/experience-programs",
			"reservations":  "/api/reservations",
			"reviews":       "/api/reviews",
			"catalog":       "/guides",
		},
	})
}
