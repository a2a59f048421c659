// internal/patterns/patterns.go

// Package patterns holds the static, read-only vocabulary and regex tables
// shared by the extraction and scoring pipeline. The library is built once
// at startup and never mutated afterwards, so it is safe to share across
// concurrent requests without locking.
package patterns

import "regexp"

// Library bundles every pattern table the pipeline needs. Pattern slices
// are ordered: they are tried in a fixed priority order and the first match
// wins where the consuming code says so.
type Library struct {
	// SkillKeywords is the recognizable skill vocabulary, all lowercase.
	// SkillList holds the same vocabulary in its stable declaration order
	// for callers that need deterministic iteration.
	SkillKeywords map[string]struct{}
	SkillList     []string

	// SkillVariations maps a canonical skill name to accepted synonyms and
	// abbreviations. The matcher consults it in both directions.
	SkillVariations map[string][]string

	// FalseAddressTerms are words that taggers tend to mislabel as
	// locations but are actually technology names.
	FalseAddressTerms map[string]struct{}

	// ExperiencePatterns recognize "<N>+ years of experience" phrasings in
	// resume text; all matches are collected and the maximum wins.
	ExperiencePatterns []*regexp.Regexp

	// JDExperiencePatterns and JDRangePatterns recognize explicit
	// experience requirements in job descriptions.
	JDExperiencePatterns []*regexp.Regexp
	JDRangePatterns      []*regexp.Regexp

	// PhonePatterns are tried in priority order, first match wins:
	// country-code forms before bare 10-digit forms.
	PhonePatterns []*regexp.Regexp

	// PincodePatterns cover regional postal-code shapes, best effort.
	PincodePatterns []*regexp.Regexp

	EmailPattern *regexp.Regexp

	// NamePatterns are anchored heuristics for candidate names.
	NamePatterns []*regexp.Regexp

	// SkillSectionPatterns capture the free text following phrases like
	// "required skills:" in a job description.
	SkillSectionPatterns []*regexp.Regexp

	// SocialPatterns recognize profile links, one platform each.
	SocialPatterns []SocialPattern

	EducationKeywords     []string
	CertificationKeywords []string
	ProgrammingLanguages  []string
	SpokenLanguages       []string

	// EducationFamilies maps an education level to its keyword family,
	// including abbreviations like "b.tech". EducationLevels fixes the
	// iteration order.
	EducationFamilies map[string][]string
	EducationLevels   []string
}

// SocialPattern pairs a platform name with its link-shaped regex.
type SocialPattern struct {
	Platform string
	Pattern  *regexp.Regexp
}

var defaultLibrary = build()

// Default returns the process-wide pattern library.
func Default() *Library {
	return defaultLibrary
}

func build() *Library {
	lib := &Library{
		SkillKeywords:     toSet(skillKeywords),
		SkillList:         skillKeywords,
		SkillVariations:   skillVariations,
		FalseAddressTerms: toSet(falseAddressTerms),

		ExperiencePatterns: compileAll(
			`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp|work)`,
			`(\d+)\+?\s*(?:year|yr)\s*(?:experience|exp)`,
			`experience\s*[:.]?\s*(\d+)\+?\s*(?:years?|yrs?)`,
			`(\d+)\+?\s*(?:years?|yrs?)\s*in\s*(?:software|development|programming|coding)`,
			`(\d+)\+?\s*(?:years?|yrs?)\s*as\s*(?:developer|engineer|programmer)`,
			// professional/industry-context variants
			`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:professional|technical|industry)`,
			`(\d+)\+?\s*(?:years?|yrs?)\s*(?:in)?\s*(?:it|software|technology)`,
		),

		JDExperiencePatterns: compileAll(
			`(?:experience|exp|work\s*experience)[\s\w]*?(\d+)\s*\+?\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
			`(\d+)\s*\+?\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)\s*(?:of\s*)?(?:experience|exp|work\s*experience)`,
			`(?:minimum|min\.?|at\s+least|\bmin\b)[\s\w]*(\d+)\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
			`(\d+)\s*\+?\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)[\s\w]*(?:experience|exp|work\s*experience|required|needed|preferred)`,
			`(?:\b(?:seeking|looking\s*for|required|needs?|wants?|requires?|must\s*have)[\s\w]*(?:with|of)?\s*)(\d+)\s*\+?\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
			`(?:\b(?:experience|exp|work\s*experience)[\s\w]*(?:in|of)?\s*)(\d+)\s*\+?\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
		),

		JDRangePatterns: compileAll(
			`(\d+)\s*[\-–—]\s*(\d+)\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
			`(?:between\s*)?(\d+)\s*(?:and|to|&)\s*(\d+)\s*(?:years?|yrs?|y\.?\s*e\.?\s*a?r?s?\b)`,
		),

		PhonePatterns: compileAll(
			`\+91[\s-]?\d{10}`,
			`\b\d{10}\b`,
			`\+\d{1,3}[\s-]?\d{8,15}`,
			`\(\d{3}\)[\s-]?\d{3}[\s-]?\d{4}`,
			`\d{3}[\s-]?\d{3}[\s-]?\d{4}`,
		),

		PincodePatterns: compileAll(
			`\b[1-9]\d{5}\b`,          // Indian pincode
			`\b\d{5}(?:-\d{4})?\b`,    // US ZIP code
			`\b[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`, // Canadian postal code
		),

		EmailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),

		NamePatterns: compileAll(
			`(?m)^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`,
			`Name\s*[:.]?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`,
			`([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*[-|]\s*(?:Resume|CV)`,
		),

		SkillSectionPatterns: compileAll(
			`required\s+skills?[:\s]+([^.]*)`,
			`must\s+have[:\s]+([^.]*)`,
			`requirements[:\s]+([^.]*)`,
			`qualifications[:\s]+([^.]*)`,
			`proficient\s+in[:\s]+([^.]*)`,
			`experience\s+with[:\s]+([^.]*)`,
		),

		SocialPatterns: []SocialPattern{
			{Platform: "linkedin", Pattern: regexp.MustCompile(`linkedin\.com/in/[\w-]+`)},
			{Platform: "github", Pattern: regexp.MustCompile(`github\.com/[\w-]+`)},
			{Platform: "website", Pattern: regexp.MustCompile(`https?://(?:www\.)?[\w-]+\.(?:com|org|net|io)`)},
		},

		EducationKeywords: []string{
			"bachelor", "master", "phd", "doctorate", "diploma", "certificate",
			"b.tech", "m.tech", "b.e", "m.e", "b.sc", "m.sc", "mba", "bca", "mca",
		},

		CertificationKeywords: []string{
			"certified", "certification", "certificate", "aws", "azure", "gcp",
			"pmp", "scrum", "agile", "cisco", "microsoft", "oracle", "comptia",
		},

		ProgrammingLanguages: []string{
			"python", "java", "javascript", "c++", "c#", "php", "ruby", "go", "rust",
		},

		SpokenLanguages: []string{
			"english", "spanish", "french", "german", "chinese", "japanese", "hindi",
		},

		EducationFamilies: map[string][]string{
			"bachelor": {"bachelor", "b.tech", "b.e", "b.sc", "bca"},
			"master":   {"master", "m.tech", "m.e", "m.sc", "mba", "mca"},
			"phd":      {"phd", "doctorate", "ph.d"},
			"diploma":  {"diploma", "certificate"},
		},
		EducationLevels: []string{"bachelor", "master", "phd", "diploma"},
	}

	return lib
}

// IsSkillKeyword reports whether the lowercase form of s is in the skill
// vocabulary.
func (l *Library) IsSkillKeyword(lower string) bool {
	_, ok := l.SkillKeywords[lower]
	return ok
}

// IsFalseAddressTerm reports whether lower is a curated technology term
// that must never be treated as a location.
func (l *Library) IsFalseAddressTerm(lower string) bool {
	_, ok := l.FalseAddressTerms[lower]
	return ok
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
