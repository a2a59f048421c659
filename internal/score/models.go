// internal/score/models.go

// Package score compares an extracted candidate profile against a job
// description and produces a weighted fit breakdown. Each analysis is rule
// based and deterministic; the semantic similarity score is supplied by the
// caller so the package never blocks on a model.
package score

// SkillAnalysis details how the candidate's skills line up with the ones
// demanded by the job description.
type SkillAnalysis struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`
	SkillCoverage float64  `json:"skill_coverage"`
}

// ExperienceAnalysis compares claimed years against the requirement
// inferred from the job description. ExperienceGap is candidate minus
// required, so negative means underqualified.
type ExperienceAnalysis struct {
	Score          float64 `json:"score"`
	RequiredYears  int     `json:"required_years"`
	CandidateYears int     `json:"candidate_years"`
	ExperienceGap  int     `json:"experience_gap"`
}

// EducationAnalysis records the degree families the job asks for and
// whether the candidate's education satisfies any of them. Required is
// ["Any"] when the description names no degree.
type EducationAnalysis struct {
	Score     float64  `json:"score"`
	Required  []string `json:"required"`
	Candidate []string `json:"candidate"`
}

// Breakdown is the full scoring result.
type Breakdown struct {
	FinalScore      float64  `json:"final_score"`
	FitCategory     string   `json:"fit_category"`
	SemanticScore   float64  `json:"semantic_score"`
	SkillScore      float64  `json:"skill_score"`
	ExperienceScore float64  `json:"experience_score"`
	EducationScore  float64  `json:"education_score"`

	SkillAnalysis      SkillAnalysis      `json:"skill_analysis"`
	ExperienceAnalysis ExperienceAnalysis `json:"experience_analysis"`
	EducationAnalysis  EducationAnalysis  `json:"education_analysis"`

	Recommendations []string `json:"recommendations"`
}

// Fit category labels, ordered best to worst.
const (
	FitExcellent = "Excellent Fit"
	FitGood      = "Good Fit"
	FitModerate  = "Moderate Fit"
	FitPoor      = "Poor Fit"
	FitError     = "Error"
)

// fitCategory buckets a final score into its label.
func fitCategory(score float64) string {
	switch {
	case score >= 85:
		return FitExcellent
	case score >= 70:
		return FitGood
	case score >= 50:
		return FitModerate
	default:
		return FitPoor
	}
}
