//go:build !integration

package usecase_test

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/model"
	"resumepulse/internal/domain/ports/repository"
)

// newTestLogger creates a silent zerolog.Logger for use in tests.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// MockUserRepo is an in-memory UserRepository with per-method overrides.
type MockUserRepo struct {
	mu    sync.Mutex
	store map[string]*model.User

	SaveFunc              func(ctx context.Context, tx repository.Tx, u *model.User) error
	FindByIDFunc          func(ctx context.Context, tx repository.Tx, id string) (*model.User, error)
	FindByEmailFunc       func(ctx context.Context, tx repository.Tx, email string) (*model.User, error)
	DecrementAnalysesFunc func(ctx context.Context, tx repository.Tx, userID string) error

	DecrementCalls int
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{store: make(map[string]*model.User)}
}

func (m *MockUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.store[u.ID] = &cp
	return nil
}

func (m *MockUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, tx, email)
	}
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

func (m *MockUserRepo) DecrementAnalyses(ctx context.Context, tx repository.Tx, userID string) error {
	if m.DecrementAnalysesFunc != nil {
		return m.DecrementAnalysesFunc(ctx, tx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecrementCalls++
	if u, ok := m.store[userID]; ok && u.Metered() && u.AnalysesRemaining > 0 {
		u.AnalysesRemaining--
	}
	return nil
}

// MockResumeRepo is an in-memory ResumeRepository with per-method overrides.
type MockResumeRepo struct {
	mu    sync.Mutex
	store map[string]*model.Resume

	SaveFunc            func(ctx context.Context, tx repository.Tx, r *model.Resume) error
	FindByIDForUserFunc func(ctx context.Context, tx repository.Tx, id, userID string) (*model.Resume, error)
	DeleteFunc          func(ctx context.Context, tx repository.Tx, id string) error
}

func NewMockResumeRepo() *MockResumeRepo {
	return &MockResumeRepo{store: make(map[string]*model.Resume)}
}

func (m *MockResumeRepo) Save(ctx context.Context, tx repository.Tx, r *model.Resume) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.store[r.ID] = &cp
	return nil
}

func (m *MockResumeRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *MockResumeRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.Resume, error) {
	if m.FindByIDForUserFunc != nil {
		return m.FindByIDForUserFunc(ctx, tx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store[id]
	if !ok || r.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Resume
	for _, r := range m.store {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockResumeRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

// MockJobRepo is an in-memory AnalysisJobRepository with per-method overrides.
type MockJobRepo struct {
	mu    sync.Mutex
	store map[string]*model.AnalysisJob

	SaveFunc func(ctx context.Context, tx repository.Tx, job *model.AnalysisJob) error
}

func NewMockJobRepo() *MockJobRepo {
	return &MockJobRepo{store: make(map[string]*model.AnalysisJob)}
}

func (m *MockJobRepo) Save(ctx context.Context, tx repository.Tx, job *model.AnalysisJob) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, job)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.store[job.ID] = &cp
	return nil
}

func (m *MockJobRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *MockJobRepo) FindByIDForUser(ctx context.Context, tx repository.Tx, id, userID string) (*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.store[id]
	if !ok || j.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *MockJobRepo) ListByUser(ctx context.Context, tx repository.Tx, userID string) ([]*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AnalysisJob
	for _, j := range m.store {
		if j.UserID == userID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockJobRepo) ListByResume(ctx context.Context, tx repository.Tx, resumeID string, limit int) ([]*model.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AnalysisJob
	for _, j := range m.store {
		if j.ResumeID == resumeID && len(out) < limit {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockJobRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

// MockDispatcher records submitted tasks; Run executes them synchronously.
type MockDispatcher struct {
	mu    sync.Mutex
	tasks []func(ctx context.Context) error

	SubmitErr error
}

func (m *MockDispatcher) Submit(task func(ctx context.Context) error) error {
	if m.SubmitErr != nil {
		return m.SubmitErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *MockDispatcher) Run(ctx context.Context) {
	m.mu.Lock()
	tasks := m.tasks
	m.tasks = nil
	m.mu.Unlock()
	for _, task := range tasks {
		_ = task(ctx)
	}
}

func (m *MockDispatcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// MockProcessor records which job IDs it was asked to process.
type MockProcessor struct {
	mu        sync.Mutex
	Processed []string
}

func (m *MockProcessor) Process(ctx context.Context, jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Processed = append(m.Processed, jobID)
}

// MockExtractor returns canned text or a canned error.
type MockExtractor struct {
	Text string
	Err  error
}

func (m *MockExtractor) Extract(filename string, data []byte) (string, error) {
	return m.Text, m.Err
}

// MockFileStore records staged keys; failures are injectable.
type MockFileStore struct {
	mu       sync.Mutex
	Uploads  []string
	Deletes  []string
	UploadEr error
	DeleteEr error
}

func (m *MockFileStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if m.UploadEr != nil {
		return m.UploadEr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Uploads = append(m.Uploads, key)
	return nil
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	if m.DeleteEr != nil {
		return m.DeleteEr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deletes = append(m.Deletes, key)
	return nil
}
