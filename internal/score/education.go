// internal/score/education.go
package score

import (
	"fmt"
	"strings"

	"resume-scanner/internal/common/errors"
)

// EducationScore checks whether the candidate's education satisfies the
// degree families the job description mentions. No mention means the score
// is a neutral 50 with Required = ["Any"]. Any one satisfied family scores
// 100; named families with no match score 0. A panic degrades to the zeroed
// analysis; sibling analyses are unaffected.
func (c *Composer) EducationScore(education []string, jobDescription string) (analysis EducationAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			stdErr := errors.NewEducationScoreError(fmt.Errorf("%v", r))
			c.logger.Error("education score failed", map[string]interface{}{
				"error":   stdErr.Error(),
				"details": stdErr.Details,
			})
			analysis = EducationAnalysis{Required: []string{}, Candidate: education}
		}
	}()

	lower := strings.ToLower(jobDescription)

	required := []string{}
	for _, level := range c.lib.EducationLevels {
		if containsAny(lower, c.lib.EducationFamilies[level]...) {
			required = append(required, level)
		}
	}

	if len(required) == 0 {
		return EducationAnalysis{
			Score:     50,
			Required:  []string{"Any"},
			Candidate: education,
		}
	}

	candidateEducation := strings.ToLower(strings.Join(education, " "))
	score := 0.0
	for _, level := range required {
		if containsAny(candidateEducation, c.lib.EducationFamilies[level]...) {
			score = 100
			break
		}
	}

	return EducationAnalysis{
		Score:     score,
		Required:  required,
		Candidate: education,
	}
}
