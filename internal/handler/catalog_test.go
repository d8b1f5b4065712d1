package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
)

func newCatalogTestServer() (*echo.Echo, *CatalogHandler, repository.Storage) {
	store := repository.NewMemoryStorage()
	h := NewCatalogHandler(store, false)
	e := echo.New()
	e.GET("/guides", h.GetPage)
	e.GET("/guides/cards", h.GetCards)
	e.POST("/guides/actions", h.DispatchAction)
	e.POST("/guides/refresh", h.RefreshCatalog)
	return e, h, store
}

type catalogPageResp struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Filtered   int    `json:"filtered"`
	Total      int    `json:"total"`
	HasPrev    bool   `json:"hasPrev"`
	HasNext    bool   `json:"hasNext"`
	Counter    string `json:"counter"`
}

func TestCatalogDefaults(t *testing.T) {
	e, _, _ := newCatalogTestServer()

	rec := doJSON(e, http.MethodGet, "/guides", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp catalogPageResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 12, resp.Total) // built-in guide set
	assert.False(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
	assert.Equal(t, "12人のガイドが見つかりました（全12人中）", resp.Counter)
}

func TestCatalogQueryFilters(t *testing.T) {
	e, _, _ := newCatalogTestServer()

	rec := doJSON(e, http.MethodGet, "/guides?location=kyoto", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp catalogPageResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Filtered)
	assert.Equal(t, 12, resp.Total)

	t.Run("location absent from every guide yields zero results", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/guides?location=okinawa", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp catalogPageResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Filtered)
		assert.Equal(t, 12, resp.Total)
		assert.Equal(t, "0人のガイドが見つかりました（全12人中）", resp.Counter)
	})

	t.Run("unknown price bucket filters nothing", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/guides?price=imaginary", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp catalogPageResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 12, resp.Filtered)
	})
}

func TestCatalogQueryIsRequestScoped(t *testing.T) {
	e, _, _ := newCatalogTestServer()

	t.Run("filters do not carry over to later requests", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/guides?location=kyoto", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var filtered catalogPageResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
		require.Equal(t, 3, filtered.Filtered)

		rec = doJSON(e, http.MethodGet, "/guides", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var plain catalogPageResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plain))
		assert.Equal(t, 12, plain.Filtered)
		assert.Equal(t, 1, plain.Page)
	})

	t.Run("page cursor does not carry over either", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/guides?page=3", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(e, http.MethodGet, "/guides", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var plain catalogPageResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plain))
		assert.Equal(t, 1, plain.Page)
	})
}

func TestCatalogCards(t *testing.T) {
	e, _, _ := newCatalogTestServer()

	rec := doJSON(e, http.MethodGet, "/guides/cards", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "田中健太")
	assert.Contains(t, rec.Body.String(), `data-action="view-details"`)
}

func TestCatalogDispatchEndpoint(t *testing.T) {
	e, _, _ := newCatalogTestServer()

	t.Run("known action", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/guides/actions", `{"action":"open-sponsor-login"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"handled":true`)
		assert.Contains(t, rec.Body.String(), "sponsorLoginModal")
	})

	t.Run("unknown action is a safe no-op", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/guides/actions", `{"action":"mystery-action"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"handled":false`)
	})

	t.Run("missing action rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/guides/actions", `{}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogRefresh(t *testing.T) {
	e, h, store := newCatalogTestServer()
	ctx := context.Background()

	t.Run("without published guides the defaults stay", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/guides/refresh", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, h.State.Guides(), 12)
	})

	t.Run("published guides replace the defaults", func(t *testing.T) {
		s, err := store.CreateStore(ctx, model.SponsorStore{StoreName: "Fuji Tours", Email: "fuji@example.com", Address: "静岡"})
		require.NoError(t, err)
		_, err = store.CreateGuide(ctx, model.TourismGuide{
			StoreID:     s.ID,
			GuideName:   "富士山ガイド",
			HourlyRate:  9000,
			Languages:   []string{"ja"},
			Specialties: "nature, hiking",
		})
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/guides/refresh", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		guides := h.State.Guides()
		require.Len(t, guides, 1)
		assert.Equal(t, "富士山ガイド", guides[0].Name)
		assert.Equal(t, "静岡", guides[0].City)
		assert.Equal(t, []string{"nature", "hiking"}, guides[0].Specialties)
	})
}
