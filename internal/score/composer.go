// internal/score/composer.go
package score

import (
	"fmt"
	"math"

	"resume-scanner/internal/common/config"
	"resume-scanner/internal/common/errors"
	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/common/metrics"
	"resume-scanner/internal/match"
	"resume-scanner/internal/patterns"
)

// Composer runs the rule-based analyses and folds them, together with the
// caller-supplied semantic score, into a weighted Breakdown. Stateless and
// safe for concurrent use.
type Composer struct {
	lib     *patterns.Library
	matcher *match.Matcher
	weights config.WeightsConfig
	logger  logger.Logger
}

// NewComposer builds a Composer with the given scoring weights. The weights
// are assumed validated by the config loader (non-negative, summing to 1).
func NewComposer(lib *patterns.Library, weights config.WeightsConfig, log logger.Logger) *Composer {
	return &Composer{
		lib:     lib,
		matcher: match.New(lib),
		weights: weights,
		logger:  log.WithFields(map[string]interface{}{"component": "composer"}),
	}
}

// Compose produces the full fit breakdown. Education only feeds its own
// analysis and the recommendations; the weighted final score is skills,
// experience and semantic similarity. Each analysis recovers its own
// panics, degrading that one sub-score to zero while the siblings still
// contribute. Compose itself never fails: a panic outside the analyses
// collapses to the zeroed breakdown labeled Error.
func (c *Composer) Compose(jobDescription string, skills []string, experienceYears int, education []string, semanticScore float64) (breakdown Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = c.errorBreakdown(r)
		}
	}()

	skillAnalysis := c.SkillScore(skills, jobDescription)
	experienceAnalysis := c.ExperienceScore(experienceYears, jobDescription)
	educationAnalysis := c.EducationScore(education, jobDescription)

	finalScore := round2(
		c.weights.Skills*skillAnalysis.Score +
			c.weights.Experience*experienceAnalysis.Score +
			c.weights.Semantic*semanticScore)

	return Breakdown{
		FinalScore:      finalScore,
		FitCategory:     fitCategory(finalScore),
		SemanticScore:   semanticScore,
		SkillScore:      skillAnalysis.Score,
		ExperienceScore: experienceAnalysis.Score,
		EducationScore:  educationAnalysis.Score,

		SkillAnalysis:      skillAnalysis,
		ExperienceAnalysis: experienceAnalysis,
		EducationAnalysis:  educationAnalysis,

		Recommendations: recommendations(finalScore, skillAnalysis, experienceAnalysis, educationAnalysis),
	}
}

// errorBreakdown is the catastrophic-failure result: everything zeroed,
// labeled Error.
func (c *Composer) errorBreakdown(r interface{}) Breakdown {
	metrics.ScoringFailures.Inc()
	stdErr := errors.NewScoringFailedError(fmt.Sprint(r))
	c.logger.Error("scoring failed", map[string]interface{}{
		"error":   stdErr.Error(),
		"details": stdErr.Details,
	})
	return Breakdown{
		FitCategory:     FitError,
		Recommendations: []string{"Error occurred during scoring"},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
