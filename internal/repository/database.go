package repository

import (
	"context"
	"database/sql"
)

// DatabaseStorage implements Storage over MySQL.  It is assembled from one
// repo per entity, each living in its own file, with method promotion doing
// the interface plumbing.  All statements are single queries; multi-row
// consistency is left to the relational engine.
type DatabaseStorage struct {
	*AccountRepo
	*SessionRepo
	*StoreRepo
	*GuideRepo
	*ProgramRepo
	*ReservationRepo
	*ReviewRepo

	db *sql.DB
}

// NewDatabaseStorage wires the per-entity repos around one shared pool.
func NewDatabaseStorage(db *sql.DB) *DatabaseStorage {
	return &DatabaseStorage{
		AccountRepo:     &AccountRepo{db: db},
		SessionRepo:     &SessionRepo{db: db},
		StoreRepo:       &StoreRepo{db: db},
		GuideRepo:       &GuideRepo{db: db},
		ProgramRepo:     &ProgramRepo{db: db},
		ReservationRepo: &ReservationRepo{db: db},
		ReviewRepo:      &ReviewRepo{db: db},
		db:              db,
	}
}

var _ Storage = (*DatabaseStorage)(nil)

// RefreshStoreAggregates recomputes totalBookings and averageRating for a
// store from its non-cancelled reservations and public reviews.  Run by the
// activity consumer after every reservation/review event.
func (d *DatabaseStorage) RefreshStoreAggregates(ctx context.Context, storeID string) error {
	const q = `UPDATE sponsor_stores s
	           SET s.total_bookings = (
	                   SELECT COUNT(*) FROM reservations r
	                   WHERE r.store_id = s.id AND r.status <> 'cancelled'),
	               s.average_rating = COALESCE((
	                   SELECT AVG(v.rating) FROM reviews v
	                   WHERE v.store_id = s.id AND v.is_public = 1), 0.00)
	           WHERE s.id = ?`
	res, err := d.db.ExecContext(ctx, q, storeID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports 0 both for a missing row and for an unchanged row,
		// so verify existence before reporting ErrNotFound.
		var one int
		if err := d.db.QueryRowContext(ctx, `SELECT 1 FROM sponsor_stores WHERE id = ?`, storeID).Scan(&one); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}
