package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// ReviewRepo persists customer reviews.
type ReviewRepo struct{ db *sql.DB }

const reviewColumns = `id, store_id, guide_id, reservation_id, customer_name,
	rating, comment, is_public, created_at, updated_at`

// CreateReview inserts a review and queries the row back.  Rating range
// validation happens at the handler, not here.
func (r *ReviewRepo) CreateReview(ctx context.Context, rv model.Review) (model.Review, error) {
	id := uuid.NewString()
	const q = `INSERT INTO reviews
		(id, store_id, guide_id, reservation_id, customer_name, rating, comment, is_public)
		VALUES (?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		id, rv.StoreID, nullable(rv.GuideID), nullable(rv.ReservationID),
		rv.CustomerName, rv.Rating, nullable(rv.Comment), rv.IsPublic)
	if err != nil {
		return model.Review{}, err
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = ? LIMIT 1`, id)
	return scanReview(row)
}

// ListPublicReviewsByStore returns a store's public reviews, newest first.
func (r *ReviewRepo) ListPublicReviewsByStore(ctx context.Context, storeID string) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews
		 WHERE store_id = ? AND is_public = 1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(row rowScanner) (model.Review, error) {
	var (
		rv model.Review

		guideID, reservationID, comment sql.NullString
	)
	err := row.Scan(&rv.ID, &rv.StoreID, &guideID, &reservationID,
		&rv.CustomerName, &rv.Rating, &comment, &rv.IsPublic,
		&rv.CreatedAt, &rv.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Review{}, ErrNotFound
	}
	if err != nil {
		return model.Review{}, err
	}
	rv.GuideID = guideID.String
	rv.ReservationID = reservationID.String
	rv.Comment = comment.String
	return rv, nil
}
