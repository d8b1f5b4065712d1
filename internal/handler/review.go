package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/queue"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
	activity "github.com/NOBU6477/tomotrip-platform/internal/service"
)

// ReviewHandler serves the reviews resource.
type ReviewHandler struct {
	Store         repository.Storage
	PublishEvents bool
}

func NewReviewHandler(store repository.Storage, publish bool) *ReviewHandler {
	return &ReviewHandler{Store: store, PublishEvents: publish}
}

// CreateReview records customer feedback for a store.  Rating must be an
// integer between 1 and 5.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req model.Review
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.StoreID == "" || req.CustomerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storeId/customerName required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	review, err := h.Store.CreateReview(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create review"})
	}

	if h.PublishEvents {
		_ = activity.PublishStoreActivity(ctx, queue.StoreActivityEvent{
			Type:         queue.ActivityReviewCreated,
			StoreID:      review.StoreID,
			ReviewID:     review.ID,
			GuideID:      review.GuideID,
			CustomerName: review.CustomerName,
			Rating:       review.Rating,
			OccurredAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, review)
}

// ListReviewsByStore returns a store's public reviews, newest first.
func (h *ReviewHandler) ListReviewsByStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Store.ListPublicReviewsByStore(ctx, c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(http.StatusOK, reviews)
}
