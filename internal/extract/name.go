// internal/extract/name.go
package extract

import (
	"regexp"
	"strings"
)

var nonLetterRe = regexp.MustCompile(`[^a-zA-Z\s]`)
var lettersOnlyRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

// extractName tries several strategies in order and returns the first
// candidate passing the validity check, or "".
func (e *Extractor) extractName(text, filename string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	// Strategy 1: first line, stripped of non-letters
	if len(lines) > 0 {
		name := strings.TrimSpace(nonLetterRe.ReplaceAllString(lines[0], ""))
		if isValidName(name) {
			return titleCase(name)
		}
	}

	// Strategy 2: second line
	if len(lines) > 1 {
		name := strings.TrimSpace(nonLetterRe.ReplaceAllString(lines[1], ""))
		if isValidName(name) {
			return titleCase(name)
		}
	}

	// Strategy 3: name-shaped patterns anywhere in the text
	for _, pattern := range e.lib.NamePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if isValidName(name) {
				return titleCase(name)
			}
		}
	}

	// Strategy 4: fall back to the filename
	if filename != "" {
		name := strings.ReplaceAll(filename, "_", " ")
		name = strings.ReplaceAll(name, "-", " ")
		name = strings.SplitN(name, ".", 2)[0]
		if isValidName(name) {
			return titleCase(name)
		}
	}

	return ""
}

// isValidName checks whether a candidate string is plausibly a person's
// name: 3-60 chars, letters and spaces only, at most 4 words, and at least
// one word of 2+ chars.
func isValidName(name string) bool {
	if len(name) < 3 || len(name) > 60 {
		return false
	}

	if !lettersOnlyRe.MatchString(name) {
		return false
	}

	words := strings.Fields(name)
	if len(words) > 4 {
		return false
	}

	for _, word := range words {
		if len(word) >= 2 {
			return true
		}
	}
	return false
}
