package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
	"resumepulse/internal/normalize"
)

var _ repository.ResumeRepository = (*PostgresResumeRepo)(nil)

type PostgresResumeRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresResumeRepo(pool *pgxpool.Pool) *PostgresResumeRepo {
	return &PostgresResumeRepo{pool: pool}
}

func (r *PostgresResumeRepo) Save(ctx context.Context, tx repository.Tx, m *model.Resume) error {
	sections, err := json.Marshal(m.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	const q = `
INSERT INTO resumes (
  id, user_id, filename, original_filename, storage_key, file_size, mime_type,
  raw_text, normalized_text, sections, extraction_quality, created_at
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12
) ON CONFLICT (id) DO NOTHING;`
	_, err = execSQL(ctx, r.pool, tx, q,
		m.ID, m.UserID, m.Filename, m.OriginalFilename, m.StorageKey, m.FileSize, m.MimeType,
		m.RawText, m.NormalizedText, sections, string(m.Quality), m.CreatedAt)
	return translateError(err)
}

const resumeSelect = `
SELECT id, user_id, filename, original_filename, storage_key, file_size, mime_type,
       raw_text, normalized_text, sections, extraction_quality, created_at
  FROM resumes`

func (r *PostgresResumeRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Resume, error) {
	return scanResume(pickRow(ctx, r.pool, tx, resumeSelect+` WHERE id=$1;`, id))
}

func (r *PostgresResumeRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.Resume, error) {
	return scanResume(pickRow(ctx, r.pool, tx, resumeSelect+` WHERE id=$1 AND user_id=$2;`, id, userID))
}

func (r *PostgresResumeRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Resume, error) {
	const q = `
SELECT r.id, r.user_id, r.filename, r.original_filename, r.storage_key, r.file_size, r.mime_type,
       r.raw_text, r.normalized_text, r.sections, r.extraction_quality, r.created_at,
       COUNT(a.id)
  FROM resumes r
  LEFT JOIN analyses a ON a.resume_id = r.id
 WHERE r.user_id=$1
 GROUP BY r.id
 ORDER BY r.created_at DESC;`
	rows, err := pickRows(ctx, r.pool, tx, q, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var out []*model.Resume
	for rows.Next() {
		var m model.Resume
		var sections []byte
		var quality string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Filename, &m.OriginalFilename, &m.StorageKey, &m.FileSize, &m.MimeType,
			&m.RawText, &m.NormalizedText, &sections, &quality, &m.CreatedAt, &m.AnalysisCount); err != nil {
			return nil, translateError(err)
		}
		if err := json.Unmarshal(sections, &m.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
		m.Quality = normalize.Quality(quality)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *PostgresResumeRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	_, err := execSQL(ctx, r.pool, tx, `DELETE FROM resumes WHERE id=$1;`, id)
	return translateError(err)
}

func scanResume(row interface{ Scan(...interface{}) error }) (*model.Resume, error) {
	var m model.Resume
	var sections []byte
	var quality string
	if err := row.Scan(&m.ID, &m.UserID, &m.Filename, &m.OriginalFilename, &m.StorageKey, &m.FileSize, &m.MimeType,
		&m.RawText, &m.NormalizedText, &sections, &quality, &m.CreatedAt); err != nil {
		return nil, translateError(err)
	}
	if err := json.Unmarshal(sections, &m.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	m.Quality = normalize.Quality(quality)
	return &m, nil
}
