package model

import (
	"time"

	"resumepulse/internal/domain"
	"resumepulse/internal/normalize"

	"github.com/google/uuid"
)

// Resume is an ingested document. It is created once at upload time and is
// immutable afterwards; deletion cascades to its analysis jobs.
type Resume struct {
	ID               string
	UserID           string
	Filename         string
	OriginalFilename string
	StorageKey       string
	FileSize         int64
	MimeType         string

	RawText        string
	NormalizedText string
	Sections       normalize.Sections
	Quality        normalize.Quality

	CreatedAt time.Time

	// AnalysisCount is populated on list reads only.
	AnalysisCount int
}

func NewResume(userID, originalFilename, mimeType string, size int64, raw string, res normalize.Result) (*Resume, error) {
	if userID == "" || originalFilename == "" {
		return nil, domain.ErrInvalidArgument
	}
	id := uuid.NewString()
	return &Resume{
		ID:               id,
		UserID:           userID,
		Filename:         id,
		OriginalFilename: originalFilename,
		StorageKey:       "resumes/" + id,
		FileSize:         size,
		MimeType:         mimeType,
		RawText:          raw,
		NormalizedText:   res.NormalizedText,
		Sections:         res.Sections,
		Quality:          res.Quality,
		CreatedAt:        time.Now(),
	}, nil
}

func (r *Resume) IsZero() bool { return r == nil || r.ID == "" }

// Ready reports whether the resume has usable extracted text for analysis.
func (r *Resume) Ready() bool { return r != nil && r.NormalizedText != "" }
