package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
)

// GuideHandler serves the tourism-guides resource.
type GuideHandler struct {
	Store repository.Storage
}

func NewGuideHandler(store repository.Storage) *GuideHandler {
	return &GuideHandler{Store: store}
}

// CreateGuide registers a guide under a sponsor store.
func (h *GuideHandler) CreateGuide(c echo.Context) error {
	var req model.TourismGuide
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.GuideName = strings.TrimSpace(req.GuideName)
	if req.StoreID == "" || req.GuideName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storeId/guideName required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	guide, err := h.Store.CreateGuide(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create guide"})
	}
	return c.JSON(http.StatusCreated, guide)
}

// GetGuide returns one guide by id.
func (h *GuideHandler) GetGuide(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	guide, err := h.Store.GetGuideByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Guide not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch guide"})
	}
	return c.JSON(http.StatusOK, guide)
}

// ListGuidesByStore returns a store's available guides, newest first.
func (h *GuideHandler) ListGuidesByStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	guides, err := h.Store.ListGuidesByStore(ctx, c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch guides"})
	}
	return c.JSON(http.StatusOK, guides)
}
