package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// GuideRepo provides CRUD operations for tourism guides.  Languages are
// stored in a JSON column and (un)marshalled here so the rest of the code
// only ever sees a []string.
type GuideRepo struct{ db *sql.DB }

const guideColumns = `id, store_id, guide_name, email, phone, languages, specialties,
	introduction, experience, hourly_rate, availability, status, profile_image_url,
	total_bookings, average_rating, is_available, created_at, updated_at`

// CreateGuide inserts a guide for a store and queries the row back to pick
// up the schema defaults.
func (r *GuideRepo) CreateGuide(ctx context.Context, g model.TourismGuide) (model.TourismGuide, error) {
	id := uuid.NewString()
	langs, err := json.Marshal(nonNilStrings(g.Languages))
	if err != nil {
		return model.TourismGuide{}, err
	}
	const q = `INSERT INTO tourism_guides
		(id, store_id, guide_name, email, phone, languages, specialties,
		 introduction, experience, hourly_rate, availability, profile_image_url)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err = r.db.ExecContext(ctx, q,
		id, g.StoreID, g.GuideName, g.Email, nullable(g.Phone), string(langs),
		nullable(g.Specialties), nullable(g.Introduction), nullable(g.Experience),
		g.HourlyRate, nullable(g.Availability), nullable(g.ProfileImageURL))
	if err != nil {
		return model.TourismGuide{}, err
	}
	return r.GetGuideByID(ctx, id)
}

// GetGuideByID returns one guide or ErrNotFound.
func (r *GuideRepo) GetGuideByID(ctx context.Context, id string) (model.TourismGuide, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+guideColumns+` FROM tourism_guides WHERE id = ? LIMIT 1`, id)
	return scanGuide(row)
}

// ListGuidesByStore returns a store's available guides, newest first.
func (r *GuideRepo) ListGuidesByStore(ctx context.Context, storeID string) ([]model.TourismGuide, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+guideColumns+` FROM tourism_guides
		 WHERE store_id = ? AND is_available = 1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TourismGuide, 0)
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGuide(row rowScanner) (model.TourismGuide, error) {
	var (
		g model.TourismGuide

		phone, specialties, introduction, experience sql.NullString
		availability, profileImageURL                sql.NullString
		langs                                        string
	)
	err := row.Scan(&g.ID, &g.StoreID, &g.GuideName, &g.Email, &phone, &langs,
		&specialties, &introduction, &experience, &g.HourlyRate, &availability,
		&g.Status, &profileImageURL, &g.TotalBookings, &g.AverageRating,
		&g.IsAvailable, &g.CreatedAt, &g.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.TourismGuide{}, ErrNotFound
	}
	if err != nil {
		return model.TourismGuide{}, err
	}
	if err := json.Unmarshal([]byte(langs), &g.Languages); err != nil {
		g.Languages = nil
	}
	g.Phone = phone.String
	g.Specialties = specialties.String
	g.Introduction = introduction.String
	g.Experience = experience.String
	g.Availability = availability.String
	g.ProfileImageURL = profileImageURL.String
	return g, nil
}

// nonNilStrings keeps the JSON column a '[]' instead of 'null' when no
// values were supplied.
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
