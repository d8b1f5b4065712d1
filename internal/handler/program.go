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

// ProgramHandler serves the experience-programs resource.
type ProgramHandler struct {
	Store repository.Storage
}

func NewProgramHandler(store repository.Storage) *ProgramHandler {
	return &ProgramHandler{Store: store}
}

// CreateProgram registers a bookable experience under a sponsor store.
func (h *ProgramHandler) CreateProgram(c echo.Context) error {
	var req model.ExperienceProgram
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ProgramName = strings.TrimSpace(req.ProgramName)
	if req.StoreID == "" || req.ProgramName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storeId/programName required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	program, err := h.Store.CreateProgram(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create program"})
	}
	return c.JSON(http.StatusCreated, program)
}

// ListProgramsByStore returns a store's active programs, newest first.
func (h *ProgramHandler) ListProgramsByStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	programs, err := h.Store.ListProgramsByStore(ctx, c.Param("storeId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch programs"})
	}
	return c.JSON(http.StatusOK, programs)
}
