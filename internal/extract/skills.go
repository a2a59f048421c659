// internal/extract/skills.go
package extract

import (
	"sort"
	"strconv"
	"strings"
)

// Skills returns the deduplicated, title-cased, sorted skills found in the
// text. The vocabulary pass is pure substring containment; when a real
// tagger is wired, noun-shaped tokens widen the net to catch skills the
// containment pass would merge into surrounding words.
func (e *Extractor) Skills(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for keyword := range e.lib.SkillKeywords {
		if strings.Contains(lower, keyword) {
			found[keyword] = struct{}{}
		}
	}

	for _, tok := range e.tagger.Tokens(text) {
		if tok.POS != "PROPN" && tok.POS != "NOUN" {
			continue
		}
		candidate := strings.ToLower(strings.TrimSpace(tok.Text))
		if e.lib.IsSkillKeyword(candidate) {
			found[candidate] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, titleCase(skill))
	}
	sort.Strings(skills)
	return skills
}

// ExperienceYears returns the largest year count claimed anywhere in the
// text, or 0 when no experience phrasing matches. Taking the maximum over
// all matches tolerates resumes that mention per-technology tenures.
func (e *Extractor) ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	max := 0
	for _, pattern := range e.lib.ExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if years > max {
				max = years
			}
		}
	}
	return max
}
