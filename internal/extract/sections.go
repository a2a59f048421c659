// internal/extract/sections.go
package extract

import "strings"

// extractEducation captures every line that mentions a degree keyword,
// title-cased, deduplicated in first-seen order.
func (e *Extractor) extractEducation(text string) []string {
	return e.linesMatching(text, e.lib.EducationKeywords)
}

// extractCertifications captures the lines that mention certification
// vocabulary. Vendor names like "aws" alone count: a certifications section
// rarely repeats the word "certified" on every line.
func (e *Extractor) extractCertifications(text string) []string {
	return e.linesMatching(text, e.lib.CertificationKeywords)
}

func (e *Extractor) linesMatching(text string, keywords []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		for _, keyword := range keywords {
			if !strings.Contains(line, keyword) {
				continue
			}
			entry := titleCase(strings.TrimSpace(line))
			if entry != "" && !seen[entry] {
				seen[entry] = true
				out = append(out, entry)
			}
			break
		}
	}
	return out
}

// extractLanguages collects programming and spoken languages mentioned
// anywhere in the text, programming languages first.
func (e *Extractor) extractLanguages(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	seen := make(map[string]bool)
	for _, group := range [][]string{e.lib.ProgrammingLanguages, e.lib.SpokenLanguages} {
		for _, lang := range group {
			if strings.Contains(lower, lang) && !seen[lang] {
				seen[lang] = true
				out = append(out, titleCase(lang))
			}
		}
	}
	return out
}
