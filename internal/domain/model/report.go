package model

import "encoding/json"

// Report is the structured feedback produced by the reasoning service. The
// service's raw response is untrusted JSON; DecodeReport applies the
// defaulting rules so a COMPLETED job never surfaces a structurally broken
// report.
type Report struct {
	Overview        string           `json:"overview"`
	StrongSignals   []StrongSignal   `json:"strongSignals"`
	WeakSignals     []WeakSignal     `json:"weakSignals"`
	RiskFlags       []RiskFlag       `json:"riskFlags"`
	Suggestions     []Suggestion     `json:"suggestions"`
	ExampleRewrites []ExampleRewrite `json:"exampleRewrites"`
}

type StrongSignal struct {
	Type         string `json:"type"`
	Evidence     string `json:"evidence"`
	WhyItMatters string `json:"whyItMatters"`
}

type WeakSignal struct {
	Gap         string `json:"gap"`
	Location    string `json:"location"`
	Implication string `json:"implication"`
	Guidance    string `json:"guidance"`
}

type RiskFlag struct {
	Type        string `json:"type"`
	Observation string `json:"observation"`
	Evidence    string `json:"evidence"`
	Note        string `json:"note"`
}

type Suggestion struct {
	Priority   string `json:"priority"` // High | Medium | Low
	Suggestion string `json:"suggestion"`
	Focus      string `json:"focus"`
	Impact     string `json:"impact"`
}

type ExampleRewrite struct {
	Original string   `json:"original"`
	Revised  string   `json:"revised"`
	Changes  []string `json:"changes"`
	Note     string   `json:"note"`
}

// Metrics is the derived numeric summary persisted alongside a report.
type Metrics struct {
	QuantificationRate float64            `json:"quantificationRate"`
	ClarityScore       float64            `json:"clarityScore"`
	ImpactDistribution map[string]float64 `json:"impactDistribution"`
}

const (
	fallbackOverview   = "Analysis completed."
	maxExampleRewrites = 2
)

// reportEnvelope mirrors the service's response shape, metrics included.
type reportEnvelope struct {
	Report
	Metrics *Metrics `json:"metrics"`
}

// DecodeReport parses a raw reasoning-service response, defaulting every
// missing field: absent lists become empty sequences, the overview falls back
// to a fixed sentence, example rewrites are hard-capped at two entries, and
// absent metrics become zero-valued.
func DecodeReport(raw []byte) (*Report, *Metrics, error) {
	var env reportEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, err
	}

	r := env.Report
	if r.Overview == "" {
		r.Overview = fallbackOverview
	}
	if r.StrongSignals == nil {
		r.StrongSignals = []StrongSignal{}
	}
	if r.WeakSignals == nil {
		r.WeakSignals = []WeakSignal{}
	}
	if r.RiskFlags == nil {
		r.RiskFlags = []RiskFlag{}
	}
	if r.Suggestions == nil {
		r.Suggestions = []Suggestion{}
	}
	if r.ExampleRewrites == nil {
		r.ExampleRewrites = []ExampleRewrite{}
	}
	if len(r.ExampleRewrites) > maxExampleRewrites {
		r.ExampleRewrites = r.ExampleRewrites[:maxExampleRewrites]
	}

	m := env.Metrics
	if m == nil {
		m = &Metrics{}
	}
	if m.ImpactDistribution == nil {
		m.ImpactDistribution = map[string]float64{}
	}
	return &r, m, nil
}
