package repository

import (
	"context"

	"resumepulse/internal/domain/model"
)

type AnalysisJobRepository interface {
	Save(ctx context.Context, tx Tx, job *model.AnalysisJob) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.AnalysisJob, error)
	FindByIDForUser(ctx context.Context, tx Tx, id, userID string) (*model.AnalysisJob, error)
	// ListByUser returns the user's jobs most-recent-first.
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.AnalysisJob, error)
	// ListByResume returns the resume's most recent jobs, capped at limit.
	ListByResume(ctx context.Context, tx Tx, resumeID string, limit int) ([]*model.AnalysisJob, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
