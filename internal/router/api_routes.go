package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/NOBU6477/tomotrip-platform/internal/handler"
)

// APIHandlers groups the resource handlers wired into /api.
type APIHandlers struct {
	Stores       *handler.StoreHandler
	Guides       *handler.GuideHandler
	Programs     *handler.ProgramHandler
	Reservations *handler.ReservationHandler
	Reviews      *handler.ReviewHandler
}

// RegisterAPI registers the REST resource endpoints under /api.  The
// routes mirror the client's fetch paths, so store-scoped listings live
// under <resource>/store/:storeId.
func RegisterAPI(e *echo.Echo, h APIHandlers) {
	api := e.Group("/api")

	// ---- Sponsor stores ----
	api.POST("/sponsor-stores", h.Stores.CreateStore)
	api.GET("/sponsor-stores", h.Stores.ListStores)
	api.GET("/sponsor-stores/:id", h.Stores.GetStore)
	api.PUT("/sponsor-stores/:id", h.Stores.UpdateStore)

	// ---- Tourism guides ----
	api.POST("/tourism-guides", h.Guides.CreateGuide)
	api.GET("/tourism-guides/:id", h.Guides.GetGuide)
	api.GET("/tourism-guides/store/:storeId", h.Guides.ListGuidesByStore)

	// ---- Experience programs ----
	api.POST("/experience-programs", h.Programs.CreateProgram)
	api.GET("/experience-programs/store/:storeId", h.Programs.ListProgramsByStore)

	// ---- Reservations ----
	api.POST("/reservations", h.Reservations.CreateReservation)
	api.GET("/reservations/store/:storeId", h.Reservations.ListReservationsByStore)
	api.PUT("/reservations/:id/status", h.Reservations.UpdateReservationStatus)

	// ---- Reviews ----
	api.POST("/reviews", h.Reviews.CreateReview)
	api.GET("/reviews/store/:storeId", h.Reviews.ListReviewsByStore)
}
