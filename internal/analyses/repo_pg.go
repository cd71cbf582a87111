package analyses

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, job_url, resume_text, job_text, raw_output, cover_letter, match_score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	var score sql.NullInt64
	if analysis.MatchScore != nil {
		score = sql.NullInt64{Int64: int64(*analysis.MatchScore), Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.JobURL,
		analysis.ResumeText,
		analysis.JobText,
		analysis.RawOutput,
		analysis.CoverLetter,
		score,
		analysis.CreatedAt,
		analysis.UpdatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, job_url, resume_text, job_text, raw_output, cover_letter, match_score, created_at, updated_at
FROM analyses
WHERE id = $1
LIMIT 1`
	var a Analysis
	var score sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&a.JobURL,
		&a.ResumeText,
		&a.JobText,
		&a.RawOutput,
		&a.CoverLetter,
		&score,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}
	if score.Valid {
		value := int(score.Int64)
		a.MatchScore = &value
	}
	return a, nil
}

// UpdateCoverLetter replaces the stored cover letter for an analysis.
func (r *PGRepo) UpdateCoverLetter(ctx context.Context, analysisID, coverLetter string) error {
	const query = `
UPDATE analyses
SET cover_letter = $2, updated_at = $3
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, analysisID, coverLetter, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
