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

func newReservationTestServer() *echo.Echo {
	store := repository.NewMemoryStorage()
	h := NewReservationHandler(store, false)
	rh := NewReviewHandler(store, false)
	e := echo.New()
	e.POST("/api/reservations", h.CreateReservation)
	e.GET("/api/reservations/store/:storeId", h.ListReservationsByStore)
	e.PUT("/api/reservations/:id/status", h.UpdateReservationStatus)
	e.POST("/api/reviews", rh.CreateReview)
	e.GET("/api/reviews/store/:storeId", rh.ListReviewsByStore)
	return e
}

func TestReservationCreateForcesStatus(t *testing.T) {
	e := newReservationTestServer()

	rec := doJSON(e, http.MethodPost, "/api/reservations",
		`{"storeId":"store-1","customerName":"山田太郎","status":"completed","paymentStatus":"paid","totalPrice":12000}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, model.ReservationConfirmed, r.Status)
	assert.Equal(t, model.PaymentPending, r.PaymentStatus)
	assert.Equal(t, 12000, r.TotalPrice)
	assert.Equal(t, 1, r.ParticipantCount)
}

func TestReservationStatusUpdate(t *testing.T) {
	e := newReservationTestServer()

	rec := doJSON(e, http.MethodPost, "/api/reservations", `{"storeId":"store-1","customerName":"A"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))

	t.Run("valid transition", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/reservations/"+r.ID+"/status", `{"status":"cancelled"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/reservations/"+r.ID+"/status", `{"status":"teleported"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing id is 404", func(t *testing.T) {
		rec := doJSON(e, http.MethodPut, "/api/reservations/missing/status", `{"status":"cancelled"}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReviewValidation(t *testing.T) {
	e := newReservationTestServer()

	t.Run("rating bounds", func(t *testing.T) {
		for _, body := range []string{
			`{"storeId":"s","customerName":"A","rating":0}`,
			`{"storeId":"s","customerName":"A","rating":6}`,
		} {
			rec := doJSON(e, http.MethodPost, "/api/reviews", body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("valid review is created", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/reviews",
			`{"storeId":"store-1","customerName":"A","rating":5,"comment":"最高でした","isPublic":true}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("private reviews are hidden from the public listing", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/reviews",
			`{"storeId":"store-1","customerName":"B","rating":2,"isPublic":false}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(e, http.MethodGet, "/api/reviews/store/store-1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []model.Review
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
		assert.Equal(t, "A", list[0].CustomerName)
	})
}
