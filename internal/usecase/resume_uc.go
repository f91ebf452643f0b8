package usecase

import (
	"bytes"
	"context"
	"fmt"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/adapter"
	"resumepulse/internal/domain/ports/repository"
	"resumepulse/internal/infra/metrics"
	"resumepulse/internal/normalize"

	"github.com/rs/zerolog"
)

var _ ResumeUseCase = (*resumeUC)(nil)

type ResumeUseCase interface {
	Upload(ctx context.Context, userID, filename, mimeType string, data []byte) (*model.Resume, error)
	Get(ctx context.Context, userID, id string) (*model.Resume, error)
	List(ctx context.Context, userID string) ([]*model.Resume, error)
	Delete(ctx context.Context, userID, id string) error
}

type resumeUC struct {
	resumes   repository.ResumeRepository
	extractor adapter.Extractor
	files     adapter.FileStore
	log       *zerolog.Logger
}

func NewResumeUseCase(resumes repository.ResumeRepository, extractor adapter.Extractor, files adapter.FileStore, log *zerolog.Logger) *resumeUC {
	return &resumeUC{resumes: resumes, extractor: extractor, files: files, log: log}
}

// Upload runs the full ingestion pipeline: extract raw text, normalize and
// segment it, stage the original binary, persist the resume. An extraction
// failure aborts ingestion; the resume is not created. Empty extracted text
// is legal and yields a POOR-quality resume.
func (u *resumeUC) Upload(ctx context.Context, userID, filename, mimeType string, data []byte) (*model.Resume, error) {
	raw, err := u.extractor.Extract(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	res := normalize.Normalize(raw)
	resume, err := model.NewResume(userID, filename, mimeType, int64(len(data)), raw, res)
	if err != nil {
		return nil, err
	}

	if err := u.files.Upload(ctx, resume.StorageKey, mimeType, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := u.resumes.Save(ctx, nil, resume); err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}

	metrics.IncExtraction(string(res.Quality))
	u.log.Info().
		Str("resume_id", resume.ID).
		Str("user_id", userID).
		Str("quality", string(res.Quality)).
		Int("normalized_len", len(res.NormalizedText)).
		Msg("resume ingested")
	return resume, nil
}

func (u *resumeUC) Get(ctx context.Context, userID, id string) (*model.Resume, error) {
	return u.resumes.FindByIDForUser(ctx, nil, id, userID)
}

func (u *resumeUC) List(ctx context.Context, userID string) ([]*model.Resume, error) {
	return u.resumes.ListByUser(ctx, nil, userID)
}

// Delete removes the staged binary best-effort and the resume record; jobs go
// with it via the storage cascade.
func (u *resumeUC) Delete(ctx context.Context, userID, id string) error {
	resume, err := u.resumes.FindByIDForUser(ctx, nil, id, userID)
	if err != nil {
		return err
	}
	if err := u.files.Delete(ctx, resume.StorageKey); err != nil {
		u.log.Warn().Err(err).Str("resume_id", id).Msg("could not delete staged file")
	}
	return u.resumes.Delete(ctx, nil, id)
}
