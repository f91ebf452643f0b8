//go:build !integration

package worker_test

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/adapter"
	"resumepulse/internal/domain/ports/repository"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

type memJobRepo struct {
	mu    sync.Mutex
	store map[string]*model.AnalysisJob

	SaveFunc func(ctx context.Context, tx repository.Tx, job *model.AnalysisJob) error
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{store: make(map[string]*model.AnalysisJob)}
}

func (m *memJobRepo) Save(ctx context.Context, tx repository.Tx, job *model.AnalysisJob) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, job)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.store[job.ID] = &cp
	return nil
}

func (m *memJobRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *memJobRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok || j.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *memJobRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.AnalysisJob, error) {
	return nil, nil
}

func (m *memJobRepo) ListByResume(ctx context.Context, tx repository.Tx, resumeID string, limit int) ([]*model.AnalysisJob, error) {
	return nil, nil
}

func (m *memJobRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

type memResumeRepo struct {
	mu    sync.Mutex
	store map[string]*model.Resume
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{store: make(map[string]*model.Resume)}
}

func (m *memResumeRepo) Save(ctx context.Context, tx repository.Tx, r *model.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.store[r.ID] = &cp
	return nil
}

func (m *memResumeRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memResumeRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.Resume, error) {
	return m.FindByID(ctx, tx, id)
}

func (m *memResumeRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Resume, error) {
	return nil, nil
}

func (m *memResumeRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	store map[string]*model.User

	DecrementCalls int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{store: make(map[string]*model.User)}
}

func (m *memUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.store[u.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) DecrementAnalyses(ctx context.Context, tx repository.Tx, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecrementCalls++
	if u, ok := m.store[userID]; ok && u.Metered() && u.AnalysesRemaining > 0 {
		u.AnalysesRemaining--
	}
	return nil
}

// fakeTxManager runs the function directly; the nil Tx exercises the
// repositories' non-transactional path.
type fakeTxManager struct {
	Err error
}

func (f *fakeTxManager) WithTx(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if f.Err != nil {
		return f.Err
	}
	return fn(ctx, nil)
}

type stubAnalyzer struct {
	Raw json.RawMessage
	Err error

	mu       sync.Mutex
	LastText string
	LastRole string
}

func (s *stubAnalyzer) Name() string { return "stub" }

func (s *stubAnalyzer) Analyze(ctx context.Context, req adapter.AnalysisRequest) (json.RawMessage, error) {
	s.mu.Lock()
	s.LastText = req.ResumeText
	s.LastRole = req.TargetRole
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Raw, nil
}
