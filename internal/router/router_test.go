package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoreTestServer() *echo.Echo {
	e := echo.New()
	RegisterRoutes(e)
	e.HTTPErrorHandler = NotFoundHandler("")
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoutes(t *testing.T) {
	e := newCoreTestServer()

	t.Run("root health answers with status and timestamp", func(t *testing.T) {
		rec := get(e, "/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)
		assert.Contains(t, rec.Body.String(), "timestamp")
	})

	t.Run("api alias answers identically", func(t *testing.T) {
		rec := get(e, "/api/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	})
}

func TestNotFoundHandler(t *testing.T) {
	e := newCoreTestServer()

	t.Run("unknown api path lists the endpoint groups", func(t *testing.T) {
		rec := get(e, "/api/nope")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "availableEndpoints")
		assert.Contains(t, rec.Body.String(), "/health")
	})
}
