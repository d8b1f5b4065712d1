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

// StoreHandler serves the sponsor-stores resource.
type StoreHandler struct {
	Store repository.Storage
}

func NewStoreHandler(store repository.Storage) *StoreHandler {
	return &StoreHandler{Store: store}
}

// CreateStore registers a new sponsor store.  A second registration with
// the same email is answered with 409.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req model.SponsorStore
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.StoreName = strings.TrimSpace(req.StoreName)
	if req.StoreName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storeName/email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	store, err := h.Store.CreateStore(ctx, req)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Store with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create store"})
	}
	return c.JSON(http.StatusCreated, store)
}

// GetStore returns one store by id.
func (h *StoreHandler) GetStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	store, err := h.Store.GetStoreByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Store not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch store"})
	}
	return c.JSON(http.StatusOK, store)
}

// UpdateStore shallow-merges the provided fields into the store.  A
// missing id is a 404, never a silent insert.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var upd model.StoreUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	store, err := h.Store.UpdateStore(ctx, c.Param("id"), upd)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Store not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update store"})
	}
	return c.JSON(http.StatusOK, store)
}

// ListStores returns the active stores, newest first.
func (h *StoreHandler) ListStores(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stores, err := h.Store.ListActiveStores(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch stores"})
	}
	return c.JSON(http.StatusOK, stores)
}
