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

// ReservationHandler serves the reservations resource.
type ReservationHandler struct {
	Store repository.Storage
	// PublishEvents controls whether created reservations are announced on
	// the broker; off when no broker is configured.
	PublishEvents bool
}

func NewReservationHandler(store repository.Storage, publish bool) *ReservationHandler {
	return &ReservationHandler{Store: store, PublishEvents: publish}
}

// CreateReservation books against a store.  Whatever status the caller
// sent is overwritten: a new reservation is always confirmed with payment
// pending.  The referenced guide or program is not checked for existence.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req model.Reservation
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.StoreID == "" || req.CustomerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storeId/customerName required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservation, err := h.Store.CreateReservation(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create reservation"})
	}

	if h.PublishEvents {
		// Fire and forget: a broker outage must not fail the booking.
		_ = activity.PublishStoreActivity(ctx, queue.StoreActivityEvent{
			Type:          queue.ActivityReservationCreated,
			StoreID:       reservation.StoreID,
			ReservationID: reservation.ID,
			GuideID:       reservation.GuideID,
			CustomerName:  reservation.CustomerName,
			TotalPrice:    reservation.TotalPrice,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, reservation)
}

// ListReservationsByStore returns a store's reservations, newest first.
func (h *ReservationHandler) ListReservationsByStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservations, err := h.Store.ListReservationsByStore(ctx, c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reservations"})
	}
	return c.JSON(http.StatusOK, reservations)
}

type reservationStatusReq struct {
	Status string `json:"status"`
}

// UpdateReservationStatus moves a reservation through its lifecycle.  The
// status must be one of the known states, and an unknown id is a 404.
func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	var req reservationStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidReservationStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservation, err := h.Store.UpdateReservationStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update reservation status"})
	}
	return c.JSON(http.StatusOK, reservation)
}
