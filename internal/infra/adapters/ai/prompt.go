package ai

import (
	"fmt"
	"strings"

	"resumepulse/internal/domain/ports/adapter"
)

const systemPrompt = `You are ResumePulse, a signal-based resume analytics assistant. Analyze the provided resume text and provide structured feedback following the exact output format.

Core Principles:
- Evaluation is signal-based, not vibe-based
- All feedback must be explainable, specific, and grounded in observable evidence
- Use qualifiers like "likely," "suggests," "may indicate" when inferring
- Do not invent achievements or exaggerate impact
- Preserve factual integrity in all suggestions

Output Requirements:
- Overview: 2-3 sentence summary
- Strong Signals: 3-5 specific signals with evidence
- Weak Signals: 3-5 signal gaps with guidance
- Risk Flags: Only if observable evidence exists
- Suggestions: 3-5 prioritized, actionable suggestions
- Example Rewrites: Maximum 2 examples with placeholders

Tone: Analytical, neutral, precise, constructive. No emojis, no motivational language.`

const responseShape = `{
  "overview": "2-3 sentence summary",
  "strongSignals": [{"type": "Signal type", "evidence": "Exact quote from resume", "whyItMatters": "Screening implication"}],
  "weakSignals": [{"gap": "What signal is missing", "location": "Where observed", "implication": "Screening impact", "guidance": "Specific direction"}],
  "riskFlags": [],
  "suggestions": [{"priority": "High|Medium|Low", "suggestion": "Actionable suggestion", "focus": "Where to apply", "impact": "Expected improvement"}],
  "exampleRewrites": [{"original": "Original bullet", "revised": "Revised example", "changes": ["Change 1"], "note": "Note about placeholders"}],
  "metrics": {"quantificationRate": 0.0, "clarityScore": 0.0, "impactDistribution": {}}
}`

func buildUserPrompt(req adapter.AnalysisRequest) string {
	var b strings.Builder
	b.WriteString("Analyze the following resume text and provide a comprehensive signal-based analysis.\n\n")
	if req.TargetRole != "" {
		fmt.Fprintf(&b, "Target Role: %s\n\n", req.TargetRole)
	} else {
		b.WriteString("Analyze for general technical roles.\n\n")
	}
	fmt.Fprintf(&b, "Resume Text:\n%s\n\n", req.ResumeText)
	b.WriteString("Provide your analysis as JSON in the following format:\n")
	b.WriteString(responseShape)
	return b.String()
}
