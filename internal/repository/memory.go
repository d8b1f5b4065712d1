package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
	"github.com/NOBU6477/tomotrip-platform/internal/utils"
)

// MemoryStorage keeps every record in process memory.  It backs the demo
// server and the test suite.  Unlike the single-threaded runtime this design
// was ported from, the HTTP server here handles requests concurrently, so
// all maps are guarded by one RWMutex.  Records are stored by value; callers
// always receive copies.
type MemoryStorage struct {
	mu           sync.RWMutex
	accounts     map[string]model.Account // keyed by id
	sessions     map[string]model.Session // keyed by token hash
	stores       []model.SponsorStore     // insertion order (oldest first)
	guides       []model.TourismGuide
	programs     []model.ExperienceProgram
	reservations []model.Reservation
	reviews      []model.Review
}

// NewMemoryStorage returns an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		accounts: make(map[string]model.Account),
		sessions: make(map[string]model.Session),
	}
}

var _ Storage = (*MemoryStorage)(nil)

func (m *MemoryStorage) CreateAccount(_ context.Context, email, password, userType string, cost int) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.Account{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return model.Account{}, ErrEmailExists
		}
	}
	now := time.Now().UTC()
	a := model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		UserType:     userType,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.accounts[a.ID] = a
	return a, nil
}

func (m *MemoryStorage) GetAccountByEmail(_ context.Context, email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Account{}, ErrNotFound
}

func (m *MemoryStorage) CreateSession(_ context.Context, userID, tokenHash, userType string, expiresAt time.Time) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: tokenHash,
		UserType:  userType,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	m.sessions[tokenHash] = s
	return s, nil
}

func (m *MemoryStorage) GetSessionByHash(_ context.Context, tokenHash string) (model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[tokenHash]
	if !ok || s.RevokedAt != nil {
		return model.Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStorage) RevokeSession(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[tokenHash]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	s.RevokedAt = &now
	m.sessions[tokenHash] = s
	return nil
}

func (m *MemoryStorage) RevokeAllSessions(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for hash, s := range m.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
			m.sessions[hash] = s
		}
	}
	return nil
}

// CreateStore activates the store immediately: the demo flow has no
// operations review step.
func (m *MemoryStorage) CreateStore(_ context.Context, store model.SponsorStore) (model.SponsorStore, error) {
	store.Email = strings.ToLower(strings.TrimSpace(store.Email))
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stores {
		if s.Email == store.Email && s.IsActive {
			return model.SponsorStore{}, ErrEmailExists
		}
	}
	now := time.Now().UTC()
	store.ID = uuid.NewString()
	store.Status = model.StoreStatusActive
	store.TotalViews = 0
	store.TotalBookings = 0
	store.AverageRating = 0
	store.IsActive = true
	store.CreatedAt = now
	store.UpdatedAt = now
	m.stores = append(m.stores, store)
	return store, nil
}

func (m *MemoryStorage) GetStoreByID(_ context.Context, id string) (model.SponsorStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return model.SponsorStore{}, ErrNotFound
}

func (m *MemoryStorage) GetStoreByEmail(_ context.Context, email string) (model.SponsorStore, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.stores {
		if s.Email == email {
			return s, nil
		}
	}
	return model.SponsorStore{}, ErrNotFound
}

func (m *MemoryStorage) GetStoreByOwner(_ context.Context, userID string) (model.SponsorStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.stores {
		if s.OwnerUserID == userID {
			return s, nil
		}
	}
	return model.SponsorStore{}, ErrNotFound
}

func (m *MemoryStorage) UpdateStore(_ context.Context, id string, upd model.StoreUpdate) (model.SponsorStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.stores {
		if s.ID != id {
			continue
		}
		applyStoreUpdate(&s, upd)
		s.UpdatedAt = time.Now().UTC()
		m.stores[i] = s
		return s, nil
	}
	return model.SponsorStore{}, ErrNotFound
}

// applyStoreUpdate shallow-merges the non-nil update fields.  Shared by both
// backends so merge semantics cannot drift between them.
func applyStoreUpdate(s *model.SponsorStore, upd model.StoreUpdate) {
	if upd.StoreName != nil {
		s.StoreName = *upd.StoreName
	}
	if upd.Phone != nil {
		s.Phone = *upd.Phone
	}
	if upd.Address != nil {
		s.Address = *upd.Address
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Category != nil {
		s.Category = *upd.Category
	}
	if upd.BusinessHours != nil {
		s.BusinessHours = *upd.BusinessHours
	}
	if upd.Website != nil {
		s.Website = *upd.Website
	}
	if upd.Status != nil {
		s.Status = *upd.Status
	}
	if upd.LogoURL != nil {
		s.LogoURL = *upd.LogoURL
	}
	if upd.CoverImageURL != nil {
		s.CoverImageURL = *upd.CoverImageURL
	}
	if upd.IsActive != nil {
		s.IsActive = *upd.IsActive
	}
}

func (m *MemoryStorage) ListActiveStores(_ context.Context) ([]model.SponsorStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.SponsorStore, 0, len(m.stores))
	for i := len(m.stores) - 1; i >= 0; i-- { // newest first
		if m.stores[i].IsActive {
			out = append(out, m.stores[i])
		}
	}
	return out, nil
}

func (m *MemoryStorage) CreateGuide(_ context.Context, g model.TourismGuide) (model.TourismGuide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	g.ID = uuid.NewString()
	if g.Status == "" {
		g.Status = model.GuideStatusPending
	}
	g.TotalBookings = 0
	g.AverageRating = 0
	g.IsAvailable = true
	g.CreatedAt = now
	g.UpdatedAt = now
	m.guides = append(m.guides, g)
	return g, nil
}

func (m *MemoryStorage) GetGuideByID(_ context.Context, id string) (model.TourismGuide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.guides {
		if g.ID == id {
			return g, nil
		}
	}
	return model.TourismGuide{}, ErrNotFound
}

func (m *MemoryStorage) ListGuidesByStore(_ context.Context, storeID string) ([]model.TourismGuide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.TourismGuide, 0)
	for i := len(m.guides) - 1; i >= 0; i-- {
		if m.guides[i].StoreID == storeID && m.guides[i].IsAvailable {
			out = append(out, m.guides[i])
		}
	}
	return out, nil
}

func (m *MemoryStorage) CreateProgram(_ context.Context, p model.ExperienceProgram) (model.ExperienceProgram, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	if p.DurationMinutes <= 0 {
		p.DurationMinutes = 60
	}
	if p.MaxParticipants <= 0 {
		p.MaxParticipants = 10
	}
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	m.programs = append(m.programs, p)
	return p, nil
}

func (m *MemoryStorage) ListProgramsByStore(_ context.Context, storeID string) ([]model.ExperienceProgram, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ExperienceProgram, 0)
	for i := len(m.programs) - 1; i >= 0; i-- {
		if m.programs[i].StoreID == storeID && m.programs[i].IsActive {
			out = append(out, m.programs[i])
		}
	}
	return out, nil
}

func (m *MemoryStorage) CreateReservation(_ context.Context, r model.Reservation) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	r.ID = uuid.NewString()
	// The server owns these two fields: whatever the caller sent is discarded.
	r.Status = model.ReservationConfirmed
	r.PaymentStatus = model.PaymentPending
	if r.ParticipantCount <= 0 {
		r.ParticipantCount = 1
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	m.reservations = append(m.reservations, r)
	return r, nil
}

func (m *MemoryStorage) ListReservationsByStore(_ context.Context, storeID string) ([]model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Reservation, 0)
	for i := len(m.reservations) - 1; i >= 0; i-- {
		if m.reservations[i].StoreID == storeID {
			out = append(out, m.reservations[i])
		}
	}
	return out, nil
}

func (m *MemoryStorage) UpdateReservationStatus(_ context.Context, id, status string) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reservations {
		if r.ID != id {
			continue
		}
		r.Status = status
		r.UpdatedAt = time.Now().UTC()
		m.reservations[i] = r
		return r, nil
	}
	return model.Reservation{}, ErrNotFound
}

func (m *MemoryStorage) CreateReview(_ context.Context, rv model.Review) (model.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	rv.ID = uuid.NewString()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	m.reviews = append(m.reviews, rv)
	return rv, nil
}

func (m *MemoryStorage) ListPublicReviewsByStore(_ context.Context, storeID string) ([]model.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Review, 0)
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].StoreID == storeID && m.reviews[i].IsPublic {
			out = append(out, m.reviews[i])
		}
	}
	return out, nil
}

func (m *MemoryStorage) RefreshStoreAggregates(_ context.Context, storeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bookings := 0
	for _, r := range m.reservations {
		if r.StoreID == storeID && r.Status != model.ReservationCancelled {
			bookings++
		}
	}
	sum, n := 0, 0
	for _, rv := range m.reviews {
		if rv.StoreID == storeID && rv.IsPublic {
			sum += rv.Rating
			n++
		}
	}
	for i, s := range m.stores {
		if s.ID != storeID {
			continue
		}
		s.TotalBookings = bookings
		if n > 0 {
			s.AverageRating = float64(sum) / float64(n)
		} else {
			s.AverageRating = 0
		}
		s.UpdatedAt = time.Now().UTC()
		m.stores[i] = s
		return nil
	}
	return ErrNotFound
}
