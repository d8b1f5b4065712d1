package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
)

func newStoreTestServer() (*echo.Echo, repository.Storage) {
	store := repository.NewMemoryStorage()
	h := NewStoreHandler(store)
	e := echo.New()
	e.POST("/api/sponsor-stores", h.CreateStore)
	e.GET("/api/sponsor-stores", h.ListStores)
	e.GET("/api/sponsor-stores/:id", h.GetStore)
	e.PUT("/api/sponsor-stores/:id", h.UpdateStore)
	return e, store
}

func createStore(t *testing.T, e *echo.Echo, body string) model.SponsorStore {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/sponsor-stores", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var s model.SponsorStore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s
}

func TestStoreCreate(t *testing.T) {
	e, _ := newStoreTestServer()

	t.Run("creates and returns the record", func(t *testing.T) {
		s := createStore(t, e, `{"storeName":"Sakura Tours","email":"Shop@Example.com","phone":"03-0000-0000"}`)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "shop@example.com", s.Email)
		assert.True(t, s.IsActive)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/sponsor-stores", `{"storeName":"Copy","email":"shop@example.com"}`, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/sponsor-stores", `{"storeName":"No Email"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoreGetAndUpdate(t *testing.T) {
	e, _ := newStoreTestServer()
	s := createStore(t, e, `{"storeName":"Sakura Tours","email":"shop@example.com","phone":"03-0000-0000"}`)

	t.Run("fetch by id", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/sponsor-stores/"+s.ID, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sakura Tours")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/sponsor-stores/does-not-exist", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update merges fields and keeps the rest", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/sponsor-stores/"+s.ID, `{"description":"老舗のツアー会社"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var got model.SponsorStore
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "老舗のツアー会社", got.Description)
		assert.Equal(t, "03-0000-0000", got.Phone)
	})

	t.Run("updating a missing id is 404", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/sponsor-stores/missing", `{"description":"x"}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStoreList(t *testing.T) {
	e, _ := newStoreTestServer()
	createStore(t, e, `{"storeName":"First","email":"first@example.com"}`)
	second := createStore(t, e, `{"storeName":"Second","email":"second@example.com"}`)

	rec := doJSON(e, http.MethodGet, "/api/sponsor-stores", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.SponsorStore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID) // newest first
}
