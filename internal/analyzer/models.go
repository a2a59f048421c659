// internal/analyzer/models.go
package analyzer

import (
	"resume-scanner/internal/extract"
	"resume-scanner/internal/score"
)

// AnalyzeRequest is the decoded form of one analysis request. Front ends
// validate it with the validation package before calling the service.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	Filename       string `json:"filename,omitempty"`
}

// Report is the complete answer to one analysis: the candidate profile,
// the detailed score breakdown, and the coarse outward fit with its
// one-line and narrative summaries.
type Report struct {
	RequestID  string  `json:"request_id"`
	MatchScore float64 `json:"match_score"`

	// Fit is the coarse Strong/Moderate/Weak label driven by the
	// configured thresholds; the finer four-tier category lives on
	// ScoreBreakdown.FitCategory.
	Fit       string `json:"fit"`
	Summary   string `json:"summary"`
	Narrative string `json:"narrative"`

	CandidateInfo     *extract.Profile `json:"candidate_info"`
	ExtractionSummary extract.Summary  `json:"extraction_summary"`
	ScoreBreakdown    score.Breakdown  `json:"score_breakdown"`
}

// Outward fit labels.
const (
	FitStrong   = "Strong Fit"
	FitModerate = "Moderate Fit"
	FitWeak     = "Weak Fit"
)
