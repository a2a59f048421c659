// internal/score/recommendations.go
package score

import (
	"fmt"
	"strings"
)

// recommendations turns the analyses into actionable advice for the
// candidate, worst gaps first.
func recommendations(finalScore float64, skills SkillAnalysis, experience ExperienceAnalysis, education EducationAnalysis) []string {
	out := []string{}

	if skills.Score < 70 {
		if len(skills.MissingSkills) > 0 {
			top := skills.MissingSkills
			if len(top) > 3 {
				top = top[:3]
			}
			out = append(out, fmt.Sprintf("Consider gaining experience with: %s", strings.Join(top, ", ")))
		} else {
			out = append(out, "Highlight your technical skills more prominently in your resume")
		}
	}

	if experience.ExperienceGap < 0 {
		out = append(out, fmt.Sprintf("Consider gaining %d more years of experience in this field", -experience.ExperienceGap))
	} else if experience.ExperienceGap > 5 {
		out = append(out, "Consider emphasizing your leadership and mentorship experience")
	}

	if education.Score < 100 && len(education.Required) > 0 && education.Required[0] != "Any" {
		out = append(out, fmt.Sprintf("The position prefers candidates with: %s education", strings.Join(education.Required, ", ")))
	}

	if finalScore < 50 {
		out = append(out, "Consider applying to more junior positions or gaining additional experience")
	} else if finalScore > 90 {
		out = append(out, "You're an excellent match for this position! Highlight your most relevant achievements.")
	}

	if len(out) == 0 {
		out = append(out, "Your profile looks good. Make sure to tailor your application to the job description.")
	}
	return out
}
