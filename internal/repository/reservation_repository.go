package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  The status and
// payment_status of a new row always come from the schema defaults
// ('confirmed'/'pending'); whatever the caller put in those fields is
// ignored.  Referenced guide/program ids are stored as-is without an
// existence check.
type ReservationRepo struct{ db *sql.DB }

const reservationColumns = `id, store_id, guide_id, program_id, customer_name,
	customer_email, customer_phone, participant_count, reservation_date,
	total_price, status, payment_status, special_requests, created_at, updated_at`

// CreateReservation inserts a reservation and queries the full row back to
// populate defaults and timestamps.
func (r *ReservationRepo) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	id := uuid.NewString()
	if res.ParticipantCount <= 0 {
		res.ParticipantCount = 1
	}
	const q = `INSERT INTO reservations
		(id, store_id, guide_id, program_id, customer_name, customer_email,
		 customer_phone, participant_count, reservation_date, total_price, special_requests)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		id, res.StoreID, nullable(res.GuideID), nullable(res.ProgramID),
		res.CustomerName, res.CustomerEmail, nullable(res.CustomerPhone),
		res.ParticipantCount, res.ReservationDate, res.TotalPrice,
		nullable(res.SpecialRequests))
	if err != nil {
		return model.Reservation{}, err
	}
	return r.getReservationByID(ctx, id)
}

// ListReservationsByStore returns all reservations of a store, newest first.
func (r *ReservationRepo) ListReservationsByStore(ctx context.Context, storeID string) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations
		 WHERE store_id = ? ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// UpdateReservationStatus sets the status of one reservation and returns the
// updated row; a missing id yields ErrNotFound.
func (r *ReservationRepo) UpdateReservationStatus(ctx context.Context, id, status string) (model.Reservation, error) {
	if _, err := r.getReservationByID(ctx, id); err != nil {
		return model.Reservation{}, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return model.Reservation{}, err
	}
	return r.getReservationByID(ctx, id)
}

func (r *ReservationRepo) getReservationByID(ctx context.Context, id string) (model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ? LIMIT 1`, id)
	return scanReservation(row)
}

func scanReservation(row rowScanner) (model.Reservation, error) {
	var (
		res model.Reservation

		guideID, programID, phone, requests sql.NullString
	)
	err := row.Scan(&res.ID, &res.StoreID, &guideID, &programID, &res.CustomerName,
		&res.CustomerEmail, &phone, &res.ParticipantCount, &res.ReservationDate,
		&res.TotalPrice, &res.Status, &res.PaymentStatus, &requests,
		&res.CreatedAt, &res.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrNotFound
	}
	if err != nil {
		return model.Reservation{}, err
	}
	res.GuideID = guideID.String
	res.ProgramID = programID.String
	res.CustomerPhone = phone.String
	res.SpecialRequests = requests.String
	return res, nil
}
