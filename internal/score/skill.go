// internal/score/skill.go
package score

import (
	"fmt"
	"strings"

	"resume-scanner/internal/common/errors"
)

// SkillScore matches the candidate's skills against the ones the job
// description asks for. Coverage drives the base score; surplus skills and
// high coverage earn capped bonuses. A description naming no recognizable
// skill scores 0 with every candidate skill counted as extra. A panic
// degrades to the zeroed analysis; sibling analyses are unaffected.
func (c *Composer) SkillScore(candidateSkills []string, jobDescription string) (analysis SkillAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			stdErr := errors.NewSkillScoreError(fmt.Errorf("%v", r))
			c.logger.Error("skill score failed", map[string]interface{}{
				"error":   stdErr.Error(),
				"details": stdErr.Details,
			})
			analysis = SkillAnalysis{
				MatchedSkills: []string{},
				MissingSkills: []string{},
				ExtraSkills:   []string{},
			}
		}
	}()

	jdSkills := c.jdSkills(jobDescription)

	if len(jdSkills) == 0 {
		return SkillAnalysis{
			MatchedSkills: []string{},
			MissingSkills: []string{},
			ExtraSkills:   append([]string{}, candidateSkills...),
		}
	}

	matched := []string{}
	missing := []string{}
	for _, jdSkill := range jdSkills {
		found := false
		for _, skill := range candidateSkills {
			if c.matcher.Skills(jdSkill, skill) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jdSkill)
		} else {
			missing = append(missing, jdSkill)
		}
	}

	extra := []string{}
	for _, skill := range candidateSkills {
		surplus := true
		for _, jdSkill := range jdSkills {
			if c.matcher.Skills(skill, jdSkill) {
				surplus = false
				break
			}
		}
		if surplus {
			extra = append(extra, skill)
		}
	}

	coverage := float64(len(matched)) / float64(len(jdSkills))
	baseScore := coverage * 100

	extraBonus := float64(len(extra)) * 2
	if extraBonus > 15 {
		extraBonus = 15
	}

	coverageBonus := 0.0
	switch {
	case coverage >= 0.8:
		coverageBonus = 10
	case coverage >= 0.6:
		coverageBonus = 5
	}

	total := baseScore + extraBonus + coverageBonus
	if total > 100 {
		total = 100
	}

	return SkillAnalysis{
		Score:         round2(total),
		MatchedSkills: matched,
		MissingSkills: missing,
		ExtraSkills:   extra,
		SkillCoverage: coverage,
	}
}

// jdSkills pulls the recognizable skill vocabulary out of a job
// description: direct containment anywhere in the text, plus a second pass
// over captured requirement sections. Order follows the vocabulary's
// declaration order, so results are deterministic.
func (c *Composer) jdSkills(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	found := []string{}
	seen := make(map[string]bool)

	for _, skill := range c.lib.SkillList {
		if strings.Contains(lower, skill) {
			seen[skill] = true
			found = append(found, skill)
		}
	}

	for _, pattern := range c.lib.SkillSectionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			section := m[1]
			for _, skill := range c.lib.SkillList {
				if !seen[skill] && strings.Contains(section, skill) {
					seen[skill] = true
					found = append(found, skill)
				}
			}
		}
	}

	return found
}
