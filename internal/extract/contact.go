// internal/extract/contact.go
package extract

import (
	"regexp"
	"strings"
)

var phoneCleanRe = regexp.MustCompile(`[^\d+]`)

func (e *Extractor) extractEmail(text string) string {
	m := e.lib.EmailPattern.FindString(text)
	if m == "" {
		return ""
	}
	email := strings.ToLower(strings.TrimSpace(m))
	if len(email) > 254 {
		return ""
	}
	return email
}

// extractPhone walks the phone patterns in priority order so that a
// country-prefixed number beats a bare 10-digit match on the same text.
func (e *Extractor) extractPhone(text string) string {
	for _, pattern := range e.lib.PhonePatterns {
		if m := pattern.FindString(text); m != "" {
			cleaned := phoneCleanRe.ReplaceAllString(m, "")
			if len(cleaned) >= 10 {
				return cleaned
			}
		}
	}
	return ""
}

// extractAddress collects location entities from the tagger plus any
// postal codes found by pattern, filtering out skill names that NER
// models commonly mislabel as places.
func (e *Extractor) extractAddress(text string) string {
	var parts []string
	seen := make(map[string]bool)

	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			return
		}
		key := strings.ToLower(candidate)
		if seen[key] {
			return
		}
		seen[key] = true
		parts = append(parts, candidate)
	}

	for _, ent := range e.tagger.Entities(text) {
		if ent.Label != "GPE" && ent.Label != "LOC" {
			continue
		}
		candidate := strings.TrimSpace(ent.Text)
		if len(candidate) <= 2 || len(strings.Fields(candidate)) > 4 {
			continue
		}
		lower := strings.ToLower(candidate)
		if e.lib.IsSkillKeyword(lower) || e.lib.IsFalseAddressTerm(lower) {
			continue
		}
		add(candidate)
	}

	for _, pattern := range e.lib.PincodePatterns {
		if m := pattern.FindString(text); m != "" {
			add(m)
		}
	}

	return strings.Join(parts, ", ")
}

// extractSocialLinks records the first URL seen for each platform.
func (e *Extractor) extractSocialLinks(text string) map[string]string {
	links := make(map[string]string)
	for _, social := range e.lib.SocialPatterns {
		if _, ok := links[social.Platform]; ok {
			continue
		}
		if m := social.Pattern.FindString(text); m != "" {
			links[social.Platform] = m
		}
	}
	return links
}
