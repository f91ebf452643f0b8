package web

import (
	"time"

	"resumepulse/internal/domain/model"
	"resumepulse/internal/normalize"
)

type userDTO struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name,omitempty"`
	SubscriptionTier  string    `json:"subscriptionTier"`
	AnalysesRemaining int       `json:"analysesRemaining"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toUserDTO(u *model.User) userDTO {
	return userDTO{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		SubscriptionTier:  string(u.Tier),
		AnalysesRemaining: u.AnalysesRemaining,
		CreatedAt:         u.CreatedAt,
	}
}

type resumeDTO struct {
	ID                 string             `json:"id"`
	OriginalFilename   string             `json:"originalFilename"`
	FileSize           int64              `json:"fileSize"`
	ExtractionQuality  string             `json:"extractionQuality"`
	Sections           normalize.Sections `json:"sections"`
	CreatedAt          time.Time          `json:"createdAt"`
	AnalysisCount      int                `json:"analysisCount"`
	NormalizedTextSize int                `json:"normalizedTextSize"`
}

func toResumeDTO(r *model.Resume) resumeDTO {
	return resumeDTO{
		ID:                 r.ID,
		OriginalFilename:   r.OriginalFilename,
		FileSize:           r.FileSize,
		ExtractionQuality:  string(r.Quality),
		Sections:           r.Sections,
		CreatedAt:          r.CreatedAt,
		AnalysisCount:      r.AnalysisCount,
		NormalizedTextSize: len(r.NormalizedText),
	}
}

// resumeDetailDTO adds the resume's recent analyses to the detail view.
type resumeDetailDTO struct {
	resumeDTO
	Analyses []analysisDTO `json:"analyses"`
}

type analysisDTO struct {
	ID               string         `json:"id"`
	ResumeID         string         `json:"resumeId"`
	TargetRole       string         `json:"targetRole,omitempty"`
	Status           string         `json:"status"`
	Report           *model.Report  `json:"report,omitempty"`
	Metrics          *model.Metrics `json:"metrics,omitempty"`
	ErrorMessage     string         `json:"errorMessage,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	CompletedAt      *time.Time     `json:"completedAt,omitempty"`
	ProcessingTimeMs int64          `json:"processingTimeMs"`
}

func toAnalysisDTO(j *model.AnalysisJob) analysisDTO {
	return analysisDTO{
		ID:               j.ID,
		ResumeID:         j.ResumeID,
		TargetRole:       j.TargetRole,
		Status:           string(j.Status),
		Report:           j.Report,
		Metrics:          j.Metrics,
		ErrorMessage:     j.ErrorMessage,
		CreatedAt:        j.CreatedAt,
		CompletedAt:      j.CompletedAt,
		ProcessingTimeMs: j.ProcessingTimeMs,
	}
}
