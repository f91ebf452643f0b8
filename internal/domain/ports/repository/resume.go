package repository

import (
	"context"

	"resumepulse/internal/domain/model"
)

type ResumeRepository interface {
	Save(ctx context.Context, tx Tx, r *model.Resume) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Resume, error)
	// FindByIDForUser returns ErrNotFound when the resume does not exist or
	// belongs to another user.
	FindByIDForUser(ctx context.Context, tx Tx, id, userID string) (*model.Resume, error)
	// ListByUser returns the user's resumes most-recent-first, with
	// AnalysisCount populated.
	ListByUser(ctx context.Context, tx Tx, userID string) ([]*model.Resume, error)
	// Delete removes the resume; dependent analysis jobs are removed by the
	// storage layer's cascade.
	Delete(ctx context.Context, tx Tx, id string) error
}
