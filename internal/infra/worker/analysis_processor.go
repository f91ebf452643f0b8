package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/adapter"
	"resumepulse/internal/domain/ports/repository"
	"resumepulse/internal/infra/logging"
	"resumepulse/internal/infra/metrics"
)

// AnalysisProcessor drives one admitted job through the single external call
// to its terminal state: PROCESSING, analyze, decode-with-defaults, then one
// transaction writing the terminal job state and (on success, metered tier)
// the quota decrement.
type AnalysisProcessor struct {
	jobs     repository.AnalysisJobRepository
	resumes  repository.ResumeRepository
	users    repository.UserRepository
	analyzer adapter.Analyzer
	tm       repository.TransactionManager
	timeout  time.Duration
	log      *zerolog.Logger
}

func NewAnalysisProcessor(
	jobs repository.AnalysisJobRepository,
	resumes repository.ResumeRepository,
	users repository.UserRepository,
	analyzer adapter.Analyzer,
	tm repository.TransactionManager,
	timeout time.Duration,
	log *zerolog.Logger,
) *AnalysisProcessor {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnalysisProcessor{
		jobs:     jobs,
		resumes:  resumes,
		users:    users,
		analyzer: analyzer,
		tm:       tm,
		timeout:  timeout,
		log:      log,
	}
}

// Process runs exactly once per job; it is the only writer of the job's
// terminal transition. Errors during the terminal write itself are logged and
// the job may remain stuck in PROCESSING — a documented operational caveat.
func (p *AnalysisProcessor) Process(ctx context.Context, jobID string) {
	ctx = logging.WithJobID(ctx, jobID)
	log := logging.With(ctx, p.log)
	defer logging.TraceDuration(log, "AnalysisProcessor.Process")()

	job, err := p.jobs.FindByID(ctx, nil, jobID)
	if err != nil {
		log.Error().Err(err).Msg("could not load analysis job")
		return
	}
	if job.Terminal() {
		return
	}
	ctx = logging.WithResumeID(ctx, job.ResumeID)
	log = logging.With(ctx, p.log)

	job.Status = model.JobStatusProcessing
	if err := p.jobs.Save(ctx, nil, job); err != nil {
		log.Error().Err(err).Msg("could not mark job processing")
		return
	}

	start := time.Now()
	report, m, err := p.analyze(ctx, job)
	latency := time.Since(start)

	if err != nil {
		metrics.ObserveAnalyzerCall(p.analyzer.Name(), latency.Milliseconds(), false)
		metrics.IncAnalysisJob(string(model.JobStatusFailed))
		log.Error().Err(err).Msg("analysis job failed")

		job.Fail(err.Error(), start)
		// Background context for the final write: the submit request is long
		// gone and a cancelled ctx must not strand the job mid-transition.
		if serr := p.jobs.Save(context.Background(), nil, job); serr != nil {
			log.Error().Err(serr).Msg("could not persist failed state")
		}
		return
	}

	metrics.ObserveAnalyzerCall(p.analyzer.Name(), latency.Milliseconds(), true)

	job.Complete(report, m, start)
	err = p.tm.WithTx(context.Background(), pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		if err := p.jobs.Save(ctx, tx, job); err != nil {
			return err
		}
		user, err := p.users.FindByID(ctx, tx, job.UserID)
		if err != nil {
			return err
		}
		if user.Metered() {
			return p.users.DecrementAnalyses(ctx, tx, job.UserID)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("could not persist completed state")
		return
	}

	metrics.IncAnalysisJob(string(model.JobStatusCompleted))
	log.Info().
		Dur("duration", latency).
		Msg("analysis job completed")
}

// analyze performs the single external call under the configured timeout and
// decodes the untrusted response at the boundary.
func (p *AnalysisProcessor) analyze(ctx context.Context, job *model.AnalysisJob) (*model.Report, *model.Metrics, error) {
	resume, err := p.resumes.FindByID(ctx, nil, job.ResumeID)
	if err != nil {
		return nil, nil, fmt.Errorf("resume not found: %w", err)
	}

	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.analyzer.Analyze(cctx, adapter.AnalysisRequest{
		ResumeText: resume.NormalizedText,
		TargetRole: job.TargetRole,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reasoning service: %w", err)
	}

	report, m, err := model.DecodeReport(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("malformed analysis response: %w", err)
	}
	return report, m, nil
}
