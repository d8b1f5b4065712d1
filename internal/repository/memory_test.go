package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/utils"
)

func newStoreRecord(email string) model.SponsorStore {
	return model.SponsorStore{
		StoreName: "Sakura Tours",
		Email:     email,
		Phone:     "03-1234-5678",
		Address:   "東京",
	}
}

func TestMemoryAccounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	acct, err := m.CreateAccount(ctx, "Owner@Example.com", "secret123", model.UserTypeStoreOwner, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, "owner@example.com", acct.Email)
	assert.True(t, acct.IsActive)
	assert.True(t, utils.VerifyPassword(acct.PasswordHash, "secret123"))
	assert.False(t, utils.VerifyPassword(acct.PasswordHash, "wrong"))

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := m.CreateAccount(ctx, "owner@example.com", "other", model.UserTypeSponsor, 4)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		got, err := m.GetAccountByEmail(ctx, "OWNER@example.COM")
		require.NoError(t, err)
		assert.Equal(t, acct.ID, got.ID)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := m.GetAccountByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	hash := utils.HashSessionRaw("raw-token")
	exp := time.Now().UTC().Add(24 * time.Hour)
	sess, err := m.CreateSession(ctx, "user-1", hash, model.UserTypeSponsor, exp)
	require.NoError(t, err)
	assert.Equal(t, hash, sess.TokenHash)

	t.Run("live session is returned", func(t *testing.T) {
		got, err := m.GetSessionByHash(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)
		assert.False(t, got.Expired(time.Now().UTC()))
	})

	t.Run("expired session is still observable", func(t *testing.T) {
		oldHash := utils.HashSessionRaw("old-token")
		_, err := m.CreateSession(ctx, "user-1", oldHash, model.UserTypeSponsor, time.Now().UTC().Add(-time.Hour))
		require.NoError(t, err)
		got, err := m.GetSessionByHash(ctx, oldHash)
		require.NoError(t, err)
		assert.True(t, got.Expired(time.Now().UTC()))
	})

	t.Run("revoked session is gone", func(t *testing.T) {
		require.NoError(t, m.RevokeSession(ctx, hash))
		_, err := m.GetSessionByHash(ctx, hash)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoke all clears every session of the user", func(t *testing.T) {
		h1 := utils.HashSessionRaw("t1")
		h2 := utils.HashSessionRaw("t2")
		_, _ = m.CreateSession(ctx, "user-2", h1, model.UserTypeSponsor, exp)
		_, _ = m.CreateSession(ctx, "user-2", h2, model.UserTypeSponsor, exp)
		require.NoError(t, m.RevokeAllSessions(ctx, "user-2"))
		_, err := m.GetSessionByHash(ctx, h1)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = m.GetSessionByHash(ctx, h2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoking unknown hash reports not found", func(t *testing.T) {
		assert.ErrorIs(t, m.RevokeSession(ctx, "nope"), ErrNotFound)
	})
}

func TestMemoryStores(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	store, err := m.CreateStore(ctx, newStoreRecord("shop@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.Equal(t, model.StoreStatusActive, store.Status)
	assert.True(t, store.IsActive)
	assert.Zero(t, store.TotalBookings)

	t.Run("duplicate active email conflicts", func(t *testing.T) {
		_, err := m.CreateStore(ctx, newStoreRecord("shop@example.com"))
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("update merges only provided fields", func(t *testing.T) {
		name := "Sakura Tours Kyoto"
		got, err := m.UpdateStore(ctx, store.ID, model.StoreUpdate{StoreName: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.StoreName)
		assert.Equal(t, "03-1234-5678", got.Phone) // untouched
	})

	t.Run("updating a missing id is not found, never an insert", func(t *testing.T) {
		name := "ghost"
		_, err := m.UpdateStore(ctx, "missing-id", model.StoreUpdate{StoreName: &name})
		assert.ErrorIs(t, err, ErrNotFound)
		stores, _ := m.ListActiveStores(ctx)
		assert.Len(t, stores, 1)
	})

	t.Run("list returns newest first and skips inactive", func(t *testing.T) {
		second, err := m.CreateStore(ctx, newStoreRecord("second@example.com"))
		require.NoError(t, err)
		inactive := false
		_, err = m.UpdateStore(ctx, store.ID, model.StoreUpdate{IsActive: &inactive})
		require.NoError(t, err)

		stores, err := m.ListActiveStores(ctx)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, second.ID, stores[0].ID)
	})
}

func TestMemoryReservations(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	t.Run("status and payment are forced on create", func(t *testing.T) {
		created, err := m.CreateReservation(ctx, model.Reservation{
			StoreID:       "store-1",
			CustomerName:  "山田太郎",
			Status:        "completed", // caller tries to cheat
			PaymentStatus: "paid",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ReservationConfirmed, created.Status)
		assert.Equal(t, model.PaymentPending, created.PaymentStatus)
		assert.Equal(t, 1, created.ParticipantCount)
	})

	t.Run("status transitions and missing ids", func(t *testing.T) {
		created, err := m.CreateReservation(ctx, model.Reservation{StoreID: "store-1", CustomerName: "A"})
		require.NoError(t, err)

		got, err := m.UpdateReservationStatus(ctx, created.ID, model.ReservationCancelled)
		require.NoError(t, err)
		assert.Equal(t, model.ReservationCancelled, got.Status)

		_, err = m.UpdateReservationStatus(ctx, "missing", model.ReservationCancelled)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listing is store-scoped and newest first", func(t *testing.T) {
		first, _ := m.CreateReservation(ctx, model.Reservation{StoreID: "store-2", CustomerName: "B"})
		second, _ := m.CreateReservation(ctx, model.Reservation{StoreID: "store-2", CustomerName: "C"})
		_, _ = m.CreateReservation(ctx, model.Reservation{StoreID: "other", CustomerName: "D"})

		list, err := m.ListReservationsByStore(ctx, "store-2")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})
}

func TestMemoryGuidesAndPrograms(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	guide, err := m.CreateGuide(ctx, model.TourismGuide{StoreID: "store-1", GuideName: "佐藤美咲", Languages: []string{"ja", "en"}})
	require.NoError(t, err)
	assert.Equal(t, model.GuideStatusPending, guide.Status)
	assert.True(t, guide.IsAvailable)

	got, err := m.GetGuideByID(ctx, guide.ID)
	require.NoError(t, err)
	assert.Equal(t, guide.GuideName, got.GuideName)

	list, err := m.ListGuidesByStore(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	program, err := m.CreateProgram(ctx, model.ExperienceProgram{StoreID: "store-1", ProgramName: "茶道体験", Price: 5000})
	require.NoError(t, err)
	assert.Equal(t, 60, program.DurationMinutes)
	assert.Equal(t, 10, program.MaxParticipants)
	assert.True(t, program.IsActive)

	programs, err := m.ListProgramsByStore(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, programs, 1)
}

func TestMemoryAggregates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	store, err := m.CreateStore(ctx, newStoreRecord("agg@example.com"))
	require.NoError(t, err)

	// Two live bookings, one cancelled.
	_, _ = m.CreateReservation(ctx, model.Reservation{StoreID: store.ID, CustomerName: "A"})
	second, _ := m.CreateReservation(ctx, model.Reservation{StoreID: store.ID, CustomerName: "B"})
	cancelled, _ := m.CreateReservation(ctx, model.Reservation{StoreID: store.ID, CustomerName: "C"})
	_, err = m.UpdateReservationStatus(ctx, cancelled.ID, model.ReservationCancelled)
	require.NoError(t, err)
	_ = second

	// Ratings 5 and 4 public, a private 1 that must not count.
	_, _ = m.CreateReview(ctx, model.Review{StoreID: store.ID, CustomerName: "A", Rating: 5, IsPublic: true})
	_, _ = m.CreateReview(ctx, model.Review{StoreID: store.ID, CustomerName: "B", Rating: 4, IsPublic: true})
	_, _ = m.CreateReview(ctx, model.Review{StoreID: store.ID, CustomerName: "C", Rating: 1, IsPublic: false})

	// Counters stay untouched until the consumer runs.
	before, err := m.GetStoreByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Zero(t, before.TotalBookings)
	assert.Zero(t, before.AverageRating)

	require.NoError(t, m.RefreshStoreAggregates(ctx, store.ID))

	after, err := m.GetStoreByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.TotalBookings)
	assert.InDelta(t, 4.5, after.AverageRating, 0.001)

	t.Run("unknown store reports not found", func(t *testing.T) {
		assert.ErrorIs(t, m.RefreshStoreAggregates(ctx, "missing"), ErrNotFound)
	})

	t.Run("public review listing hides private ones", func(t *testing.T) {
		reviews, err := m.ListPublicReviewsByStore(ctx, store.ID)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})
}
