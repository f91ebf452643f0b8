package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
)

var _ repository.AnalysisJobRepository = (*PostgresAnalysisJobRepo)(nil)

type PostgresAnalysisJobRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAnalysisJobRepo(pool *pgxpool.Pool) *PostgresAnalysisJobRepo {
	return &PostgresAnalysisJobRepo{pool: pool}
}

func (r *PostgresAnalysisJobRepo) Save(ctx context.Context, tx repository.Tx, job *model.AnalysisJob) error {
	report, metrics, err := marshalFindings(job)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO analyses (
  id, user_id, resume_id, target_role, status, report, metrics, error_message,
  created_at, completed_at, processing_time_ms
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
) ON CONFLICT (id) DO UPDATE SET
  status=$5, report=$6, metrics=$7, error_message=$8,
  completed_at=$10, processing_time_ms=$11;`
	_, err = execSQL(ctx, r.pool, tx, q,
		job.ID, job.UserID, job.ResumeID, job.TargetRole, string(job.Status), report, metrics,
		job.ErrorMessage, job.CreatedAt, job.CompletedAt, job.ProcessingTimeMs)
	return translateError(err)
}

const jobSelect = `
SELECT id, user_id, resume_id, target_role, status, report, metrics, error_message,
       created_at, completed_at, processing_time_ms
  FROM analyses`

func (r *PostgresAnalysisJobRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.AnalysisJob, error) {
	return scanJob(pickRow(ctx, r.pool, tx, jobSelect+` WHERE id=$1;`, id))
}

func (r *PostgresAnalysisJobRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.AnalysisJob, error) {
	return scanJob(pickRow(ctx, r.pool, tx, jobSelect+` WHERE id=$1 AND user_id=$2;`, id, userID))
}

func (r *PostgresAnalysisJobRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.AnalysisJob, error) {
	rows, err := pickRows(ctx, r.pool, tx, jobSelect+` WHERE user_id=$1 ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var out []*model.AnalysisJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PostgresAnalysisJobRepo) ListByResume(ctx context.Context, tx repository.Tx, resumeID string, limit int) ([]*model.AnalysisJob, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := pickRows(ctx, r.pool, tx, jobSelect+` WHERE resume_id=$1 ORDER BY created_at DESC LIMIT $2;`, resumeID, limit)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var out []*model.AnalysisJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PostgresAnalysisJobRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	_, err := execSQL(ctx, r.pool, tx, `DELETE FROM analyses WHERE id=$1;`, id)
	return translateError(err)
}

func marshalFindings(job *model.AnalysisJob) (report, metrics interface{}, err error) {
	if job.Report != nil {
		b, err := json.Marshal(job.Report)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal report: %w", err)
		}
		report = b
	}
	if job.Metrics != nil {
		b, err := json.Marshal(job.Metrics)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal metrics: %w", err)
		}
		metrics = b
	}
	return report, metrics, nil
}

func scanJob(row interface{ Scan(...interface{}) error }) (*model.AnalysisJob, error) {
	var j model.AnalysisJob
	var status string
	var report, metrics []byte
	if err := row.Scan(&j.ID, &j.UserID, &j.ResumeID, &j.TargetRole, &status, &report, &metrics,
		&j.ErrorMessage, &j.CreatedAt, &j.CompletedAt, &j.ProcessingTimeMs); err != nil {
		return nil, translateError(err)
	}
	j.Status = model.JobStatus(status)
	if len(report) > 0 {
		j.Report = &model.Report{}
		if err := json.Unmarshal(report, j.Report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
	}
	if len(metrics) > 0 {
		j.Metrics = &model.Metrics{}
		if err := json.Unmarshal(metrics, j.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}
	return &j, nil
}
