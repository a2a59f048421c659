// internal/score/composer_test.go
package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner/internal/common/config"
	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/patterns"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	weights := config.WeightsConfig{Skills: 0.45, Experience: 0.35, Semantic: 0.20}
	return NewComposer(patterns.Default(), weights, logger.NewTestLogger(t))
}

func TestRequiredYears(t *testing.T) {
	c := newTestComposer(t)

	tests := []struct {
		name string
		jd   string
		want int
	}{
		{"explicit years of experience", "we need 3+ years of experience with Python", 3},
		{"minimum phrasing", "minimum 4 years in backend work", 4},
		{"range takes upper bound", "3-5 years experience required", 5},
		{"between range", "between 2 and 6 years of experience", 6},
		{"no number, senior wording", "senior engineer with solid experience", 5},
		{"no number, entry level", "entry level role, experience with teams a plus", 0},
		{"no number, mid level", "mid level engineer with experience", 3},
		{"no number, generic experience mention", "hands-on experience building things", 2},
		{"experience never mentioned", "python developer needed", 0},
		{"empty description", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.RequiredYears(tt.jd))
		})
	}
}

func TestExperienceScore_MidLevelSweetSpot(t *testing.T) {
	c := newTestComposer(t)

	got := c.ExperienceScore(5, "Python, Django developer with 3+ years of experience required")

	assert.Equal(t, 3, got.RequiredYears)
	assert.Equal(t, 5, got.CandidateYears)
	assert.Equal(t, 2, got.ExperienceGap)
	// base 100, mid-level sweet spot bonus +10, clamped back to 100
	assert.Equal(t, 100.0, got.Score)
}

func TestExperienceScore_Underqualified(t *testing.T) {
	c := newTestComposer(t)

	got := c.ExperienceScore(2, "requires 8+ years of experience as a principal engineer")

	assert.Equal(t, 8, got.RequiredYears)
	assert.Equal(t, -6, got.ExperienceGap)
	// base 2/8*100 = 25, senior bracket underqualified -10
	assert.Equal(t, 15.0, got.Score)
}

func TestExperienceScore_OverqualifiedForJuniorRole(t *testing.T) {
	c := newTestComposer(t)

	got := c.ExperienceScore(10, "entry level role, some experience helpful")

	// required falls back to 1 (entry wording); base 100, junior bracket
	// overqualified -5, overqual bonus +5
	assert.Equal(t, 1, got.RequiredYears)
	assert.Equal(t, 9, got.ExperienceGap)
	assert.Equal(t, 100.0, got.Score)
}

func TestSkillScore_NoRecognizableSkills(t *testing.T) {
	c := newTestComposer(t)
	candidate := []string{"Python", "Docker"}

	for _, jd := range []string{"", "tell us about you"} {
		got := c.SkillScore(candidate, jd)

		assert.Zero(t, got.Score)
		assert.Empty(t, got.MatchedSkills)
		assert.Empty(t, got.MissingSkills)
		assert.Equal(t, candidate, got.ExtraSkills)
		assert.Zero(t, got.SkillCoverage)
	}
}

func TestSkillScore_FullCoverage(t *testing.T) {
	c := newTestComposer(t)

	got := c.SkillScore([]string{"Python", "Docker", "Kubernetes"}, "required skills: python, docker")

	assert.Contains(t, got.MatchedSkills, "python")
	assert.Contains(t, got.MatchedSkills, "docker")
	assert.Empty(t, got.MissingSkills)
	assert.Equal(t, 1.0, got.SkillCoverage)
	// full coverage caps the score regardless of bonuses
	assert.Equal(t, 100.0, got.Score)
}

func TestSkillScore_PartialCoverage(t *testing.T) {
	c := newTestComposer(t)

	got := c.SkillScore([]string{"Python"}, "must have: python, php, mysql")

	require.Len(t, got.MatchedSkills, 1)
	assert.ElementsMatch(t, []string{"php", "mysql"}, got.MissingSkills)
	assert.Empty(t, got.ExtraSkills)
	assert.InDelta(t, 1.0/3.0, got.SkillCoverage, 1e-9)
	// base 33.33, no extras, no coverage bonus
	assert.Equal(t, 33.33, got.Score)
}

func TestEducationScore(t *testing.T) {
	c := newTestComposer(t)

	t.Run("bachelor required and held", func(t *testing.T) {
		got := c.EducationScore([]string{"Bachelor Of Science"}, "bachelor degree required")
		assert.Equal(t, 100.0, got.Score)
		assert.Equal(t, []string{"bachelor"}, got.Required)
	})

	t.Run("bachelor required, not held", func(t *testing.T) {
		got := c.EducationScore([]string{"High School"}, "bachelor degree required")
		assert.Zero(t, got.Score)
	})

	t.Run("abbreviation satisfies the family", func(t *testing.T) {
		got := c.EducationScore([]string{"B.Tech In Computer Science"}, "bachelor degree required")
		assert.Equal(t, 100.0, got.Score)
	})

	t.Run("no requirement is neutral", func(t *testing.T) {
		got := c.EducationScore([]string{"Bachelor Of Science"}, "join the best software team")
		assert.Equal(t, 50.0, got.Score)
		assert.Equal(t, []string{"Any"}, got.Required)
	})
}

func TestCompose_WeightedFormula(t *testing.T) {
	c := newTestComposer(t)

	jd := "required skills: python, docker. 3+ years of experience. bachelor degree."
	got := c.Compose(jd, []string{"Python", "Docker"}, 5, []string{"Bachelor Of Engineering"}, 80)

	want := round2(0.45*got.SkillScore + 0.35*got.ExperienceScore + 0.20*got.SemanticScore)
	assert.Equal(t, want, got.FinalScore)
	assert.GreaterOrEqual(t, got.FinalScore, 0.0)
	assert.LessOrEqual(t, got.FinalScore, 100.0)
	assert.Equal(t, 80.0, got.SemanticScore)
	assert.Equal(t, 100.0, got.EducationScore)
	assert.NotEmpty(t, got.Recommendations)
	assert.NotEmpty(t, got.FitCategory)
}

func TestFitCategory(t *testing.T) {
	assert.Equal(t, FitExcellent, fitCategory(85))
	assert.Equal(t, FitGood, fitCategory(70))
	assert.Equal(t, FitModerate, fitCategory(50))
	assert.Equal(t, FitPoor, fitCategory(49.99))
}

func TestRecommendations(t *testing.T) {
	t.Run("missing skills named first", func(t *testing.T) {
		got := recommendations(60,
			SkillAnalysis{Score: 40, MissingSkills: []string{"go", "docker", "redis", "kafka"}},
			ExperienceAnalysis{},
			EducationAnalysis{Score: 100})
		require.NotEmpty(t, got)
		assert.Equal(t, "Consider gaining experience with: go, docker, redis", got[0])
	})

	t.Run("underqualified names the gap", func(t *testing.T) {
		got := recommendations(60,
			SkillAnalysis{Score: 90},
			ExperienceAnalysis{ExperienceGap: -2},
			EducationAnalysis{Score: 100})
		assert.Contains(t, got, "Consider gaining 2 more years of experience in this field")
	})

	t.Run("strong profile gets the default line", func(t *testing.T) {
		got := recommendations(75,
			SkillAnalysis{Score: 90},
			ExperienceAnalysis{ExperienceGap: 1},
			EducationAnalysis{Score: 100})
		assert.Equal(t, []string{"Your profile looks good. Make sure to tailor your application to the job description."}, got)
	})

	t.Run("low final score suggests junior roles", func(t *testing.T) {
		got := recommendations(30,
			SkillAnalysis{Score: 90},
			ExperienceAnalysis{},
			EducationAnalysis{Score: 100})
		assert.Contains(t, got, "Consider applying to more junior positions or gaining additional experience")
	})
}

// brokenComposer has no matcher, so any skill comparison that falls through
// to the variation table dereferences nil and panics.
func brokenComposer(t *testing.T) *Composer {
	t.Helper()
	c := newTestComposer(t)
	c.matcher = nil
	return c
}

func TestSkillScore_PanicDegradesToZero(t *testing.T) {
	c := brokenComposer(t)

	got := c.SkillScore([]string{"Docker"}, "must have: python")

	assert.Zero(t, got.Score)
	assert.Zero(t, got.SkillCoverage)
	assert.Empty(t, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)
	assert.Empty(t, got.ExtraSkills)
}

func TestCompose_DegradedSkillScoreKeepsSiblings(t *testing.T) {
	c := brokenComposer(t)

	got := c.Compose(
		"must have: python. 3+ years of experience. bachelor degree.",
		[]string{"Docker"}, 5, []string{"Bachelor Of Science"}, 80)

	assert.NotEqual(t, FitError, got.FitCategory)
	assert.Zero(t, got.SkillScore)
	assert.Equal(t, 100.0, got.ExperienceScore)
	assert.Equal(t, 100.0, got.EducationScore)
	assert.Equal(t, 80.0, got.SemanticScore)
	// 0.45*0 + 0.35*100 + 0.20*80
	assert.Equal(t, 51.0, got.FinalScore)
	assert.Equal(t, FitModerate, got.FitCategory)
	assert.Contains(t, got.Recommendations, "Highlight your technical skills more prominently in your resume")
}

func TestExperienceScore_PanicKeepsCandidateYears(t *testing.T) {
	c := newTestComposer(t)
	c.lib = nil

	got := c.ExperienceScore(7, "5+ years of experience")

	assert.Zero(t, got.Score)
	assert.Zero(t, got.RequiredYears)
	assert.Equal(t, 7, got.CandidateYears)
	assert.Zero(t, got.ExperienceGap)
}

func TestEducationScore_PanicKeepsCandidate(t *testing.T) {
	c := newTestComposer(t)
	c.lib = nil

	got := c.EducationScore([]string{"Bachelor Of Science"}, "bachelor degree required")

	assert.Zero(t, got.Score)
	assert.Empty(t, got.Required)
	assert.Equal(t, []string{"Bachelor Of Science"}, got.Candidate)
}

func TestErrorBreakdown(t *testing.T) {
	c := newTestComposer(t)

	got := c.errorBreakdown("nil map write")

	assert.Equal(t, FitError, got.FitCategory)
	assert.Zero(t, got.FinalScore)
	assert.Zero(t, got.SkillScore)
	assert.Zero(t, got.ExperienceScore)
	assert.Zero(t, got.EducationScore)
	assert.Zero(t, got.SemanticScore)
	assert.Equal(t, []string{"Error occurred during scoring"}, got.Recommendations)
}
