package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/NOBU6477/tomotrip-platform/internal/model"
)

// ProgramRepo provides CRUD operations for experience programs.
type ProgramRepo struct{ db *sql.DB }

const programColumns = `id, store_id, program_name, description, duration_minutes,
	price, max_participants, languages, category, image_url, is_active,
	created_at, updated_at`

// CreateProgram inserts a program for a store and queries the row back.
func (r *ProgramRepo) CreateProgram(ctx context.Context, p model.ExperienceProgram) (model.ExperienceProgram, error) {
	id := uuid.NewString()
	langs, err := json.Marshal(nonNilStrings(p.Languages))
	if err != nil {
		return model.ExperienceProgram{}, err
	}
	if p.DurationMinutes <= 0 {
		p.DurationMinutes = 60
	}
	if p.MaxParticipants <= 0 {
		p.MaxParticipants = 10
	}
	const q = `INSERT INTO experience_programs
		(id, store_id, program_name, description, duration_minutes, price,
		 max_participants, languages, category, image_url)
		VALUES (?,?,?,?,?,?,?,?,?,?)`
	_, err = r.db.ExecContext(ctx, q,
		id, p.StoreID, p.ProgramName, nullable(p.Description), p.DurationMinutes,
		p.Price, p.MaxParticipants, string(langs), nullable(p.Category), nullable(p.ImageURL))
	if err != nil {
		return model.ExperienceProgram{}, err
	}
	return r.getProgramByID(ctx, id)
}

// ListProgramsByStore returns a store's active programs, newest first.
func (r *ProgramRepo) ListProgramsByStore(ctx context.Context, storeID string) ([]model.ExperienceProgram, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+programColumns+` FROM experience_programs
		 WHERE store_id = ? AND is_active = 1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ExperienceProgram, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProgramRepo) getProgramByID(ctx context.Context, id string) (model.ExperienceProgram, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM experience_programs WHERE id = ? LIMIT 1`, id)
	return scanProgram(row)
}

func scanProgram(row rowScanner) (model.ExperienceProgram, error) {
	var (
		p model.ExperienceProgram

		description, category, imageURL sql.NullString
		langs                           string
	)
	err := row.Scan(&p.ID, &p.StoreID, &p.ProgramName, &description,
		&p.DurationMinutes, &p.Price, &p.MaxParticipants, &langs, &category,
		&imageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.ExperienceProgram{}, ErrNotFound
	}
	if err != nil {
		return model.ExperienceProgram{}, err
	}
	if err := json.Unmarshal([]byte(langs), &p.Languages); err != nil {
		p.Languages = nil
	}
	p.Description = description.String
	p.Category = category.String
	p.ImageURL = imageURL.String
	return p, nil
}
