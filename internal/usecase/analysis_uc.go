package usecase

import (
	"context"
	"fmt"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"

	"github.com/rs/zerolog"
)

var _ AnalysisUseCase = (*analysisUC)(nil)

type AnalysisUseCase interface {
	// Submit admits a new analysis request and returns the job in its initial
	// state without waiting for the external call.
	Submit(ctx context.Context, userID, resumeID, targetRole string) (*model.AnalysisJob, error)
	Get(ctx context.Context, userID, id string) (*model.AnalysisJob, error)
	List(ctx context.Context, userID string) ([]*model.AnalysisJob, error)
	// ListForResume returns the resume's recent jobs, ownership checked.
	ListForResume(ctx context.Context, userID, resumeID string) ([]*model.AnalysisJob, error)
	Delete(ctx context.Context, userID, id string) error
}

// Dispatcher hands a unit of work to the bounded worker pool.
type Dispatcher interface {
	Submit(task func(ctx context.Context) error) error
}

// JobProcessor drives one admitted job to its terminal state.
type JobProcessor interface {
	Process(ctx context.Context, jobID string)
}

type analysisUC struct {
	jobs      repository.AnalysisJobRepository
	resumes   repository.ResumeRepository
	users     repository.UserRepository
	pool      Dispatcher
	processor JobProcessor
	log       *zerolog.Logger
}

func NewAnalysisUseCase(
	jobs repository.AnalysisJobRepository,
	resumes repository.ResumeRepository,
	users repository.UserRepository,
	pool Dispatcher,
	processor JobProcessor,
	log *zerolog.Logger,
) *analysisUC {
	return &analysisUC{jobs: jobs, resumes: resumes, users: users, pool: pool, processor: processor, log: log}
}

// Submit enforces the admission checks strictly before job creation: quota on
// the metered tier, resume ownership, extracted text present. The job row is
// written PENDING and the processing task is enqueued; the worker flips it to
// PROCESSING when a slot frees up.
func (a *analysisUC) Submit(ctx context.Context, userID, resumeID, targetRole string) (*model.AnalysisJob, error) {
	if resumeID == "" {
		return nil, domain.ErrInvalidArgument
	}

	user, err := a.users.FindByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Metered() && user.AnalysesRemaining <= 0 {
		return nil, domain.ErrQuotaExceeded
	}

	resume, err := a.resumes.FindByIDForUser(ctx, nil, resumeID, userID)
	if err != nil {
		return nil, err
	}
	if !resume.Ready() {
		return nil, domain.ErrSourceNotReady
	}

	job, err := model.NewAnalysisJob(userID, resumeID, targetRole)
	if err != nil {
		return nil, err
	}
	if err := a.jobs.Save(ctx, nil, job); err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}

	jobID := job.ID
	if err := a.pool.Submit(func(ctx context.Context) error {
		a.processor.Process(ctx, jobID)
		return nil
	}); err != nil {
		// The row stays PENDING; the client observes a stuck job rather than
		// a lost one. Operational caveat, logged loudly.
		a.log.Error().Err(err).Str("job_id", jobID).Msg("could not enqueue analysis job")
	}

	a.log.Info().Str("job_id", jobID).Str("resume_id", resumeID).Str("user_id", userID).Msg("analysis submitted")
	return job, nil
}

func (a *analysisUC) Get(ctx context.Context, userID, id string) (*model.AnalysisJob, error) {
	return a.jobs.FindByIDForUser(ctx, nil, id, userID)
}

func (a *analysisUC) List(ctx context.Context, userID string) ([]*model.AnalysisJob, error) {
	return a.jobs.ListByUser(ctx, nil, userID)
}

func (a *analysisUC) ListForResume(ctx context.Context, userID, resumeID string) ([]*model.AnalysisJob, error) {
	if _, err := a.resumes.FindByIDForUser(ctx, nil, resumeID, userID); err != nil {
		return nil, err
	}
	return a.jobs.ListByResume(ctx, nil, resumeID, 10)
}

func (a *analysisUC) Delete(ctx context.Context, userID, id string) error {
	if _, err := a.jobs.FindByIDForUser(ctx, nil, id, userID); err != nil {
		return err
	}
	return a.jobs.Delete(ctx, nil, id)
}
