package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// StoreRepo provides CRUD operations for sponsor stores.  New stores start
// in the 'pending' lifecycle state (schema default) until an operations
// account activates them; the is_active flag still defaults to 1 so a
// pending store is visible in listings, mirroring the original schema.
type StoreRepo struct{ db *sql.DB }

const storeColumns = `id, store_name, email, phone, address, description, category,
	business_hours, website, status, logo_url, cover_image_url, owner_user_id,
	total_views, total_bookings, average_rating, is_active, created_at, updated_at`

// CreateStore inserts a sponsor store and queries the full row back so the
// caller sees the schema defaults (status, counters, timestamps).  A
// duplicate email yields ErrEmailExists.
func (r *StoreRepo) CreateStore(ctx context.Context, store model.SponsorStore) (model.SponsorStore, error) {
	store.Email = strings.ToLower(strings.TrimSpace(store.Email))
	id := uuid.NewString()
	const q = `INSERT INTO sponsor_stores
		(id, store_name, email, phone, address, description, category,
		 business_hours, website, logo_url, cover_image_url, owner_user_id)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		id, store.StoreName, store.Email, nullable(store.Phone), nullable(store.Address),
		nullable(store.Description), nullable(store.Category), nullable(store.BusinessHours),
		nullable(store.Website), nullable(store.LogoURL), nullable(store.CoverImageURL),
		nullable(store.OwnerUserID))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.SponsorStore{}, ErrEmailExists
		}
		return model.SponsorStore{}, err
	}
	return r.GetStoreByID(ctx, id)
}

// GetStoreByID returns one store or ErrNotFound.
func (r *StoreRepo) GetStoreByID(ctx context.Context, id string) (model.SponsorStore, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM sponsor_stores WHERE id = ? LIMIT 1`, id)
	return scanStore(row)
}

// GetStoreByEmail returns one store by normalized email or ErrNotFound.
func (r *StoreRepo) GetStoreByEmail(ctx context.Context, email string) (model.SponsorStore, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM sponsor_stores WHERE email = ? LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanStore(row)
}

// GetStoreByOwner returns the store linked to an owner account.
func (r *StoreRepo) GetStoreByOwner(ctx context.Context, userID string) (model.SponsorStore, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM sponsor_stores WHERE owner_user_id = ? LIMIT 1`, userID)
	return scanStore(row)
}

// UpdateStore loads the row, shallow-merges the non-nil fields and writes
// the merged record back.  The load-first shape gives both backends the
// same ErrNotFound behavior on a missing id.
func (r *StoreRepo) UpdateStore(ctx context.Context, id string, upd model.StoreUpdate) (model.SponsorStore, error) {
	s, err := r.GetStoreByID(ctx, id)
	if err != nil {
		return model.SponsorStore{}, err
	}
	applyStoreUpdate(&s, upd)
	const q = `UPDATE sponsor_stores SET
		store_name=?, phone=?, address=?, description=?, category=?,
		business_hours=?, website=?, status=?, logo_url=?, cover_image_url=?,
		is_active=?, updated_at=NOW()
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, q,
		s.StoreName, nullable(s.Phone), nullable(s.Address), nullable(s.Description),
		nullable(s.Category), nullable(s.BusinessHours), nullable(s.Website), s.Status,
		nullable(s.LogoURL), nullable(s.CoverImageURL), s.IsActive, id)
	if err != nil {
		return model.SponsorStore{}, err
	}
	return r.GetStoreByID(ctx, id)
}

// ListActiveStores returns active stores newest first.
func (r *StoreRepo) ListActiveStores(ctx context.Context) ([]model.SponsorStore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+storeColumns+` FROM sponsor_stores WHERE is_active = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SponsorStore, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (model.SponsorStore, error) {
	var (
		s                                         model.SponsorStore
		phone, address, description, category     sql.NullString
		businessHours, website, logoURL, coverURL sql.NullString
		ownerUserID                               sql.NullString
	)
	err := row.Scan(&s.ID, &s.StoreName, &s.Email, &phone, &address, &description,
		&category, &businessHours, &website, &s.Status, &logoURL, &coverURL,
		&ownerUserID, &s.TotalViews, &s.TotalBookings, &s.AverageRating,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.SponsorStore{}, ErrNotFound
	}
	if err != nil {
		return model.SponsorStore{}, err
	}
	s.Phone = phone.String
	s.Address = address.String
	s.Description = description.String
	s.Category = category.String
	s.BusinessHours = businessHours.String
	s.Website = website.String
	s.LogoURL = logoURL.String
	s.CoverImageURL = coverURL.String
	s.OwnerUserID = ownerUserID.String
	return s, nil
}

// nullable maps an empty string onto SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
