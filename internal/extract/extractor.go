// internal/extract/extractor.go

// Package extract derives candidate attributes from raw resume text using
// regex heuristics plus an optional named-entity tagger. Every sub-extractor
// degrades independently: a failure in one field leaves the others intact,
// and Extract itself never fails.
package extract

import (
	"fmt"
	"strings"

	"resume-scanner/internal/common/errors"
	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/common/metrics"
	"resume-scanner/internal/patterns"
)

// Extractor runs the per-field extraction heuristics. It is stateless apart
// from the read-only pattern library, so one instance can serve concurrent
// requests.
type Extractor struct {
	lib    *patterns.Library
	tagger Tagger
	logger logger.Logger
}

// New creates an Extractor. A nil tagger degrades to NopTagger.
func New(lib *patterns.Library, tagger Tagger, log logger.Logger) *Extractor {
	if tagger == nil {
		tagger = NopTagger{}
	}
	return &Extractor{
		lib:    lib,
		tagger: tagger,
		logger: log.WithFields(map[string]interface{}{"component": "extractor"}),
	}
}

// Extract derives a Profile from resume text. The filename is a fallback
// source for the candidate name. Extract never fails: a panicking
// sub-extractor leaves its field at the empty sentinel and the siblings
// unaffected.
func (e *Extractor) Extract(text, filename string) *Profile {
	profile := NewProfile()

	e.safely("name", func() { profile.Name = e.extractName(text, filename) })
	e.safely("email", func() { profile.Email = e.extractEmail(text) })
	e.safely("phone", func() { profile.Phone = e.extractPhone(text) })
	e.safely("address", func() { profile.Address = e.extractAddress(text) })
	e.safely("skills", func() { profile.Skills = e.Skills(text) })
	e.safely("experience_years", func() { profile.ExperienceYears = e.ExperienceYears(text) })
	e.safely("education", func() { profile.Education = e.extractEducation(text) })
	e.safely("certifications", func() { profile.Certifications = e.extractCertifications(text) })
	e.safely("languages", func() { profile.Languages = e.extractLanguages(text) })
	e.safely("social_links", func() { profile.SocialLinks = e.extractSocialLinks(text) })

	return profile
}

// safely runs one sub-extraction, collapsing a panic to the field's empty
// sentinel. The public contract never exposes the internal error.
func (e *Extractor) safely(field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ExtractionFieldFailures.WithLabelValues(field).Inc()
			stdErr := errors.NewExtractionFieldError(field, fmt.Errorf("%v", r))
			e.logger.Error("extraction field failed", map[string]interface{}{
				"field":    field,
				"error":    stdErr.Error(),
				"details":  stdErr.Details,
				"category": errors.GetErrorCategory(stdErr.Code),
			})
		}
	}()
	fn()
}

// titleCase capitalizes the first letter of every word, where a word starts
// after any non-letter. Matches the casing used throughout the tables, so
// "node.js" becomes "Node.Js" and "c++" becomes "C++".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(upper(r))
		case isLetter:
			b.WriteRune(lower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}
