// Package normalize turns extractor-produced raw text into a structured,
// quality-rated document: line-wrap artifacts are merged back together, the
// text is segmented into labeled resume sections, and a coarse extraction
// quality verdict is computed. All functions are pure and deterministic.
package normalize

import (
	"regexp"
	"strings"
)

type Quality string

const (
	QualityGood    Quality = "GOOD"
	QualityLimited Quality = "LIMITED"
	QualityPoor    Quality = "POOR"
)

// Sections groups the document's content lines by topic, in document order.
// Header lines themselves are consumed during segmentation and never stored.
type Sections struct {
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Other      []string `json:"other"`
}

type Result struct {
	NormalizedText string
	Sections       Sections
	Quality        Quality
}

// sectionTable maps header patterns to a section bucket. Declaration order is
// significant: the first matching section wins ties.
var sectionTable = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"experience", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(experience|work experience|professional experience|employment)`),
		regexp.MustCompile(`(?i)^(work history|career)`),
	}},
	{"projects", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(projects?|personal projects?|academic projects?)`),
		regexp.MustCompile(`(?i)^(portfolio|side projects)`),
	}},
	{"skills", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(skills?|technical skills?|core competencies)`),
		regexp.MustCompile(`(?i)^(technologies|tools)`),
	}},
	{"education", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(education|academic background|academic)`),
		regexp.MustCompile(`(?i)^(qualifications)`),
	}},
}

var artifactRun = regexp.MustCompile(`\s{3,}`)

// Normalize runs the whole pipeline on raw extracted text. The empty string
// is a legal input and classifies as POOR.
func Normalize(raw string) Result {
	text := MergeLines(raw)
	return Result{
		NormalizedText: text,
		Sections:       SplitSections(text),
		Quality:        AssessQuality(text),
	}
}

// MergeLines undoes line-wrapping artifacts from text extraction. A line is
// joined with its immediate follower when it is short (<80 chars), does not
// end in terminal punctuation or a bullet glyph, and the follower does not
// open with an uppercase letter. Single lookahead only: a merged line is not
// reconsidered in the same pass. Blank lines are dropped.
func MergeLines(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	merged := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if len(line) < 80 && !endsInBreak(line) && next != "" && !startsUpper(next) {
				merged = append(merged, line+" "+next)
				i++ // follower consumed
				continue
			}
		}
		merged = append(merged, line)
	}
	return strings.Join(merged, "\n")
}

func endsInBreak(line string) bool {
	r := line[len(line)-1]
	switch r {
	case '.', '!', '?', '-', '*':
		return true
	}
	return strings.HasSuffix(line, "•") // bullet glyph
}

func startsUpper(line string) bool {
	c := line[0]
	return c >= 'A' && c <= 'Z'
}

// SplitSections partitions normalized lines into labeled buckets. A header
// line moves the cursor and is itself discarded; content before the first
// recognized header lands in Other.
func SplitSections(text string) Sections {
	var s Sections
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := matchHeader(line); ok {
			current = name
			continue
		}
		switch current {
		case "experience":
			s.Experience = append(s.Experience, line)
		case "projects":
			s.Projects = append(s.Projects, line)
		case "skills":
			s.Skills = append(s.Skills, line)
		case "education":
			s.Education = append(s.Education, line)
		default:
			s.Other = append(s.Other, line)
		}
	}
	return s
}

func matchHeader(line string) (string, bool) {
	for _, entry := range sectionTable {
		for _, p := range entry.patterns {
			if p.MatchString(line) {
				return entry.name, true
			}
		}
	}
	return "", false
}

// AssessQuality flags extractions unlikely to be useful, such as scanned PDFs
// with no real text layer. Thresholds are exact comparisons.
func AssessQuality(text string) Quality {
	if len(text) < 100 {
		return QualityPoor
	}
	if len(text) < 500 {
		return QualityLimited
	}
	artifacts := len(artifactRun.FindAllString(text, -1))
	if artifacts*20 > len(text) {
		return QualityPoor
	}
	return QualityGood
}
