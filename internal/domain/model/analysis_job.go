package model

import (
	"time"

	"resumepulse/internal/domain"

	"github.com/oklog/ulid/v2"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// AnalysisJob tracks one analysis request from admission to a terminal state.
// Exactly one of {Report+Metrics, ErrorMessage} is populated, and only after
// the job leaves PROCESSING.
type AnalysisJob struct {
	ID         string
	UserID     string
	ResumeID   string
	TargetRole string

	Status       JobStatus
	Report       *Report
	Metrics      *Metrics
	ErrorMessage string

	CreatedAt        time.Time
	CompletedAt      *time.Time
	ProcessingTimeMs int64
}

func NewAnalysisJob(userID, resumeID, targetRole string) (*AnalysisJob, error) {
	if userID == "" || resumeID == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &AnalysisJob{
		ID:         ulid.Make().String(),
		UserID:     userID,
		ResumeID:   resumeID,
		TargetRole: targetRole,
		Status:     JobStatusPending,
		CreatedAt:  time.Now(),
	}, nil
}

func (j *AnalysisJob) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// Complete moves the job to its COMPLETED terminal state.
func (j *AnalysisJob) Complete(report *Report, metrics *Metrics, startedAt time.Time) {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.Report = report
	j.Metrics = metrics
	j.ErrorMessage = ""
	j.CompletedAt = &now
	j.ProcessingTimeMs = now.Sub(startedAt).Milliseconds()
}

// Fail moves the job to its FAILED terminal state.
func (j *AnalysisJob) Fail(message string, startedAt time.Time) {
	if message == "" {
		message = "analysis failed for an unknown reason"
	}
	now := time.Now()
	j.Status = JobStatusFailed
	j.Report = nil
	j.Metrics = nil
	j.ErrorMessage = message
	j.CompletedAt = &now
	j.ProcessingTimeMs = now.Sub(startedAt).Milliseconds()
}
