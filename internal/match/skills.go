// internal/match/skills.go

// Package match implements fuzzy equality between skill strings. It is the
// sole primitive the scorer uses to compute matched/missing/extra skill
// sets; comparisons stay O(required × candidate), which is fine at the
// vocabulary sizes involved.
package match

import (
	"strings"

	"resume-scanner/internal/patterns"
)

// Matcher compares skill strings against the variation table of a pattern
// library.
type Matcher struct {
	variations map[string][]string
}

// New creates a Matcher backed by the given pattern library.
func New(lib *patterns.Library) *Matcher {
	return &Matcher{variations: lib.SkillVariations}
}

// Skills reports whether two skill strings refer to the same skill.
// Case-insensitive: exact equality, substring containment either way, or a
// shared canonical entry in the variation table.
func (m *Matcher) Skills(a, b string) bool {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))

	if s1 == "" || s2 == "" {
		return false
	}

	if s1 == s2 {
		return true
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	// Variation table, checked in both directions.
	for canonical, variants := range m.variations {
		if s1 == canonical && contains(variants, s2) {
			return true
		}
		if s2 == canonical && contains(variants, s1) {
			return true
		}
	}

	return false
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
