package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NOBU6477/tomotrip-platform/internal/catalog"
	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
)

// CatalogHandler serves the public guide catalog: the paged listing, the
// rendered card fragment and the data-action dispatcher.
type CatalogHandler struct {
	Store      repository.Storage
	State      *catalog.State
	Dispatcher *catalog.Dispatcher
}

// NewCatalogHandler builds a catalog seeded with the built-in guides.
// Published guides replace the defaults on the first refresh.
func NewCatalogHandler(store repository.Storage, persistFilters bool) *CatalogHandler {
	state := catalog.NewState(catalog.DefaultGuides())
	state.SetPersistFilters(persistFilters)
	return &CatalogHandler{
		Store:      store,
		State:      state,
		Dispatcher: catalog.NewDispatcher(state),
	}
}

// Refresh reloads the catalog from the published guides of every active
// store.  With nothing published the built-in defaults stay in place.
func (h *CatalogHandler) Refresh(ctx context.Context) error {
	stores, err := h.Store.ListActiveStores(ctx)
	if err != nil {
		return err
	}
	var guides []catalog.Guide
	for _, s := range stores {
		list, err := h.Store.ListGuidesByStore(ctx, s.ID)
		if err != nil {
			return err
		}
		for _, g := range list {
			guides = append(guides, coerceGuide(g, s.Address))
		}
	}
	if len(guides) == 0 {
		guides = catalog.DefaultGuides()
	}
	h.State.SetGuides(guides)
	return nil
}

// GetPage returns one catalog page as JSON.  Query parameters select the
// page and filters for this request only.
func (h *CatalogHandler) GetPage(c echo.Context) error {
	page := h.pageForRequest(c)
	return c.JSON(http.StatusOK, echo.Map{
		"guides":     page.Guides,
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"filtered":   page.Filtered,
		"total":      page.Total,
		"hasPrev":    page.HasPrev,
		"hasNext":    page.HasNext,
		"counter":    catalog.CounterText(page.Filtered, page.Total),
		"pageInfo":   catalog.PageInfoText(page.Number),
		"range":      catalog.RangeText(page),
	})
}

// GetCards returns the current page as a rendered HTML fragment, ready to
// swap into the card grid container.
func (h *CatalogHandler) GetCards(c echo.Context) error {
	page := h.pageForRequest(c)
	html, err := catalog.RenderCards(page.Guides)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render failed"})
	}
	return c.HTML(http.StatusOK, string(html))
}

// DispatchAction runs one data-action event through the dispatcher and
// returns the client instruction.  Unknown actions come back as handled:
// false no-ops.
func (h *CatalogHandler) DispatchAction(c echo.Context) error {
	var req catalog.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Action == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action required"})
	}
	return c.JSON(http.StatusOK, h.Dispatcher.Dispatch(req))
}

// RefreshCatalog reloads the published guides on demand.
func (h *CatalogHandler) RefreshCatalog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Refresh(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to refresh catalog"})
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(h.State.Guides())})
}

// pageForRequest computes the catalog view from the request's own query
// parameters over a snapshot of the guide set.  GET requests never touch
// the shared state, so one client's filters and page cursor cannot leak
// into another client's response; the dispatcher and refresh flows are
// the only writers of State.
func (h *CatalogHandler) pageForRequest(c echo.Context) catalog.Page {
	f := catalog.Filters{
		Location: c.QueryParam("location"),
		Language: c.QueryParam("language"),
		Price:    c.QueryParam("price"),
		Search:   c.QueryParam("search"),
	}
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	return catalog.BuildPage(h.State.Guides(), f, page)
}

// coerceGuide maps a persisted guide onto its catalog card view.  Guides
// carry no location of their own, so the owning store's address becomes
// the card's place label.
func coerceGuide(g model.TourismGuide, place string) catalog.Guide {
	return catalog.Guide{
		ID:          g.ID,
		Name:        g.GuideName,
		City:        place,
		Rating:      g.AverageRating,
		Price:       g.HourlyRate,
		Image:       g.ProfileImageURL,
		Description: g.Introduction,
		Languages:   g.Languages,
		Specialties: splitSpecialties(g.Specialties),
	}
}

func splitSpecialties(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
