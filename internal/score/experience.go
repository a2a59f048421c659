// internal/score/experience.go
package score

import (
	"fmt"
	"strconv"
	"strings"

	"resume-scanner/internal/common/errors"
)

// RequiredYears infers the experience requirement from a job description.
// Explicit mentions win, with ranges contributing their upper bound. When
// the description talks about experience without a number, the seniority
// wording decides; a description that never mentions experience returns 0.
func (c *Composer) RequiredYears(jobDescription string) int {
	if jobDescription == "" {
		return 0
	}
	lower := strings.ToLower(jobDescription)

	maxYears := 0
	for _, pattern := range c.lib.JDExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
	}
	for _, pattern := range c.lib.JDRangePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			for _, g := range m[1:] {
				if years, err := strconv.Atoi(g); err == nil && years > maxYears {
					maxYears = years
				}
			}
		}
	}
	if maxYears > 0 {
		return maxYears
	}

	if !containsAny(lower, "experience", "exp", "work experience") {
		return 0
	}
	switch {
	case containsAny(lower, "entry level", "fresher", "0-1", "0 to 1"):
		return 0
	case containsAny(lower, "senior", "lead", "principal"):
		return 5
	case containsAny(lower, "mid-level", "mid level", "mid"):
		return 3
	default:
		return 2
	}
}

// ExperienceScore compares the candidate's years against the inferred
// requirement. Meeting the bar scores 100 before bonuses; falling short
// scores proportionally. Bonuses reward the sweet spot for the role's
// seniority band and penalize large mismatches. A panic degrades to the
// zeroed analysis; sibling analyses are unaffected.
func (c *Composer) ExperienceScore(experienceYears int, jobDescription string) (analysis ExperienceAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			stdErr := errors.NewExperienceScoreError(fmt.Errorf("%v", r))
			c.logger.Error("experience score failed", map[string]interface{}{
				"error":   stdErr.Error(),
				"details": stdErr.Details,
			})
			analysis = ExperienceAnalysis{CandidateYears: experienceYears}
		}
	}()

	requiredYears := c.RequiredYears(jobDescription)

	if requiredYears == 0 {
		lower := strings.ToLower(jobDescription)
		switch {
		case containsAny(lower, "senior", "lead", "principal", "architect"):
			requiredYears = 5
		case containsAny(lower, "junior", "entry", "graduate", "intern"):
			requiredYears = 1
		default:
			requiredYears = 3
		}
	}

	var baseScore float64
	if experienceYears >= requiredYears {
		baseScore = 100
	} else {
		baseScore = float64(experienceYears) / float64(requiredYears) * 100
	}

	bonus := 0.0
	switch {
	case requiredYears <= 2:
		if experienceYears >= 1 && experienceYears <= 3 {
			bonus = 10
		} else if experienceYears > 5 {
			bonus = -5
		}
	case requiredYears <= 5:
		if experienceYears >= 3 && experienceYears <= 7 {
			bonus = 10
		} else if experienceYears > 10 {
			bonus = -5
		}
	default:
		if experienceYears >= requiredYears && experienceYears <= requiredYears+3 {
			bonus = 10
		} else if experienceYears < requiredYears-2 {
			bonus = -10
		}
	}

	if experienceYears > requiredYears*2 {
		overqual := float64(experienceYears - requiredYears*2)
		if overqual > 5 {
			overqual = 5
		}
		bonus += overqual
	}

	total := baseScore + bonus
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return ExperienceAnalysis{
		Score:          round2(total),
		RequiredYears:  requiredYears,
		CandidateYears: experienceYears,
		ExperienceGap:  experienceYears - requiredYears,
	}
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
