package adapter

import (
	"context"
	"encoding/json"
)

// AnalysisRequest carries the normalized resume text and an optional
// target-role hint to the reasoning service.
type AnalysisRequest struct {
	ResumeText string
	TargetRole string
}

// Analyzer is the port for the external reasoning service. The response is
// untrusted JSON; callers apply decode-with-defaults at the boundary.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, req AnalysisRequest) (json.RawMessage, error)
}
