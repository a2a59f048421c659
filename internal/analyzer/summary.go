// internal/analyzer/summary.go
package analyzer

import (
	"fmt"

	"resume-scanner/internal/common/config"
	"resume-scanner/internal/score"
)

// fitSummary maps a final score to the outward three-tier label and its
// fixed one-sentence summary.
func fitSummary(finalScore float64, thresholds config.ThresholdsConfig) (string, string) {
	switch {
	case finalScore >= thresholds.StrongFit:
		return FitStrong, "The resume strongly matches the job description. The candidate is highly suitable for the position."
	case finalScore >= thresholds.ModerateFit:
		return FitModerate, "The resume likely matches the job description. The candidate may be suitable with some training or support."
	default:
		return FitWeak, "The resume does not closely match the job description. The candidate may not be an ideal fit."
	}
}

// narrative writes the longer score-banded assessment used in reports.
func narrative(b score.Breakdown) string {
	switch {
	case b.FinalScore >= 80:
		return fmt.Sprintf("Excellent candidate match with %v%% overall score. Strong technical skills (%v%%) and relevant experience (%v%%) make this candidate highly suitable for the position.",
			b.FinalScore, b.SkillScore, b.ExperienceScore)
	case b.FinalScore >= 60:
		return fmt.Sprintf("Good candidate match with %v%% overall score. Candidate shows potential with moderate skill alignment (%v%%) and experience fit (%v%%). Consider for interview with some training needs.",
			b.FinalScore, b.SkillScore, b.ExperienceScore)
	case b.FinalScore >= 40:
		return fmt.Sprintf("Moderate candidate match with %v%% overall score. Some skill gaps (%v%%) and experience concerns (%v%%) suggest this candidate may need additional development or training.",
			b.FinalScore, b.SkillScore, b.ExperienceScore)
	default:
		return fmt.Sprintf("Poor candidate match with %v%% overall score. Significant skill gaps (%v%%) and experience mismatch (%v%%) indicate this candidate may not be suitable for this position.",
			b.FinalScore, b.SkillScore, b.ExperienceScore)
	}
}
