package repository

import (
	"context"
	"time"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// Storage is the backend-agnostic persistence contract used by every
// handler.  Identifiers and created_at/updated_at timestamps are generated
// by the implementation, never supplied by the caller.  List operations
// return newest-first ordering and apply the default visibility filters
// noted per method.
type Storage interface {
	// Accounts.  CreateAccount hashes the password with bcrypt at the given
	// cost and lower-cases the email; a duplicate email yields ErrEmailExists.
	CreateAccount(ctx context.Context, email, password, userType string, cost int) (model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (model.Account, error)

	// Sessions.  Only the SHA-256 hash of a session token is persisted.
	CreateSession(ctx context.Context, userID, tokenHash, userType string, expiresAt time.Time) (model.Session, error)
	GetSessionByHash(ctx context.Context, tokenHash string) (model.Session, error)
	RevokeSession(ctx context.Context, tokenHash string) error
	RevokeAllSessions(ctx context.Context, userID string) error

	// Sponsor stores.  CreateStore rejects duplicate emails with
	// ErrEmailExists.  ListActiveStores returns only isActive records,
	// newest first.  UpdateStore shallow-merges the non-nil fields and
	// refreshes updatedAt; a missing id yields ErrNotFound.
	CreateStore(ctx context.Context, store model.SponsorStore) (model.SponsorStore, error)
	GetStoreByID(ctx context.Context, id string) (model.SponsorStore, error)
	GetStoreByEmail(ctx context.Context, email string) (model.SponsorStore, error)
	GetStoreByOwner(ctx context.Context, userID string) (model.SponsorStore, error)
	UpdateStore(ctx context.Context, id string, upd model.StoreUpdate) (model.SponsorStore, error)
	ListActiveStores(ctx context.Context) ([]model.SponsorStore, error)

	// Tourism guides.  ListGuidesByStore returns available guides only.
	CreateGuide(ctx context.Context, g model.TourismGuide) (model.TourismGuide, error)
	GetGuideByID(ctx context.Context, id string) (model.TourismGuide, error)
	ListGuidesByStore(ctx context.Context, storeID string) ([]model.TourismGuide, error)

	// Experience programs.  ListProgramsByStore returns active programs only.
	CreateProgram(ctx context.Context, p model.ExperienceProgram) (model.ExperienceProgram, error)
	ListProgramsByStore(ctx context.Context, storeID string) ([]model.ExperienceProgram, error)

	// Reservations.  CreateReservation forces status "confirmed" and payment
	// status "pending" regardless of the input record.  No cross-resource
	// existence check is performed for guideId/programId.
	CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	ListReservationsByStore(ctx context.Context, storeID string) ([]model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id, status string) (model.Reservation, error)

	// Reviews.  ListPublicReviewsByStore returns isPublic records only.
	CreateReview(ctx context.Context, rv model.Review) (model.Review, error)
	ListPublicReviewsByStore(ctx context.Context, storeID string) ([]model.Review, error)

	// RefreshStoreAggregates recomputes the store's totalBookings and
	// averageRating from its reservations and public reviews.  It is called
	// by the activity consumer, never by request handlers.
	RefreshStoreAggregates(ctx context.Context, storeID string) error
}
