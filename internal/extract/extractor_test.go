// internal/extract/extractor_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/patterns"
)

type fakeTagger struct {
	entities []Entity
	tokens   []Token
}

func (f fakeTagger) Entities(string) []Entity { return f.entities }
func (f fakeTagger) Tokens(string) []Token    { return f.tokens }

func newTestExtractor(t *testing.T, tagger Tagger) *Extractor {
	t.Helper()
	return New(patterns.Default(), tagger, logger.NewTestLogger(t))
}

const sampleResume = `John Smith
Senior Software Engineer
john.smith@example.com | +91 9876543210
Bangalore 560001

5+ years of experience in software development.

Skills: Python, Go, Docker, Kubernetes, PostgreSQL

Education:
Bachelor of Technology in Computer Science

Certifications:
AWS Certified Solutions Architect

linkedin.com/in/john-smith
github.com/johnsmith
`

func TestExtract_FullResume(t *testing.T) {
	e := newTestExtractor(t, nil)

	profile := e.Extract(sampleResume, "john_smith.pdf")
	require.NotNil(t, profile)

	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "john.smith@example.com", profile.Email)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.Equal(t, 5, profile.ExperienceYears)
	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Go")
	assert.Contains(t, profile.Skills, "Docker")
	assert.NotEmpty(t, profile.Education)
	assert.NotEmpty(t, profile.Certifications)
	assert.Equal(t, "linkedin.com/in/john-smith", profile.SocialLinks["linkedin"])
	assert.Equal(t, "github.com/johnsmith", profile.SocialLinks["github"])
}

func TestExtract_EmptyText(t *testing.T) {
	e := newTestExtractor(t, nil)

	profile := e.Extract("", "")
	require.NotNil(t, profile)

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Phone)
	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.ExperienceYears)
	assert.NotNil(t, profile.SocialLinks)
}

func TestExtractName(t *testing.T) {
	e := newTestExtractor(t, nil)

	tests := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{
			name: "first line",
			text: "Jane Doe\nSoftware Engineer",
			want: "Jane Doe",
		},
		{
			name: "first line has no letters, second line wins",
			text: "== 2024 ==\nJane Doe\njane@example.com",
			want: "Jane Doe",
		},
		{
			name: "labeled name pattern",
			text: "12345!\n67890#\nName: Ravi Kumar\n9999",
			want: "Ravi Kumar",
		},
		{
			name:     "filename fallback",
			text:     "1234\n5678",
			filename: "jane_doe.pdf",
			want:     "Jane Doe",
		},
		{
			name: "nothing valid",
			text: "1234\n5678",
			want: "",
		},
		{
			name: "too many words rejected on first line",
			text: "This Line Has Far Too Many Capitalized Words Here\nAnita Sharma",
			want: "Anita Sharma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.extractName(tt.text, tt.filename))
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, isValidName("Jane Doe"))
	assert.True(t, isValidName("Ravi"))
	assert.False(t, isValidName("Jo"))                        // too short
	assert.False(t, isValidName("Jane123"))                   // digits
	assert.False(t, isValidName("One Two Three Four Five"))   // too many words
	assert.False(t, isValidName(""))
}

func TestExtractPhone_PriorityOrder(t *testing.T) {
	e := newTestExtractor(t, nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"indian with country code", "call +91 9876543210 now", "+919876543210"},
		{"bare ten digits", "call 9876543210 now", "9876543210"},
		{"us parenthesized", "call (555) 123-4567 now", "5551234567"},
		{"country code beats bare digits", "+91-9876543210", "+919876543210"},
		{"no phone", "no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.extractPhone(tt.text))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	e := newTestExtractor(t, nil)

	assert.Equal(t, "a.b@example.com", e.extractEmail("Contact: A.B@Example.Com"))
	assert.Empty(t, e.extractEmail("no email here"))
}

func TestExtractAddress_FiltersSkillTerms(t *testing.T) {
	tagger := fakeTagger{entities: []Entity{
		{Text: "Bangalore", Label: "GPE"},
		{Text: "Python", Label: "GPE"},   // NER mislabel, filtered by vocabulary
		{Text: "React", Label: "LOC"},    // curated false term
		{Text: "Mumbai", Label: "GPE"},
		{Text: "Some Very Long Place Name Here", Label: "GPE"}, // >4 words
		{Text: "Acme Corp", Label: "ORG"},                      // wrong label
	}}
	e := newTestExtractor(t, tagger)

	got := e.extractAddress("Bangalore Mumbai 560001")
	assert.Equal(t, "Bangalore, Mumbai, 560001", got)
}

func TestExtractAddress_NoTagger(t *testing.T) {
	e := newTestExtractor(t, nil)

	// Pincode patterns still apply without a tagger.
	assert.Equal(t, "560001", e.extractAddress("Bangalore 560001"))
	assert.Empty(t, e.extractAddress("no location at all"))
}

func TestSkills(t *testing.T) {
	e := newTestExtractor(t, nil)

	skills := e.Skills("Experienced with Python, Docker and node.js")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Node.Js")
	assert.IsIncreasing(t, skills)

	assert.Empty(t, e.Skills("little to see"))
}

func TestSkills_TaggerWidening(t *testing.T) {
	tagger := fakeTagger{tokens: []Token{
		{Text: "Kubernetes", POS: "PROPN"},
		{Text: "running", POS: "VERB"},
	}}
	e := newTestExtractor(t, tagger)

	// The token pass catches skills the substring pass would already get,
	// and never admits non-vocabulary tokens.
	skills := e.Skills("deployments")
	assert.Contains(t, skills, "Kubernetes")
}

func TestExperienceYears(t *testing.T) {
	e := newTestExtractor(t, nil)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple", "5 years of experience", 5},
		{"plus form", "8+ yrs experience in Go", 8},
		{"labeled", "Experience: 3 years", 3},
		{"max across mentions", "2 years in software, 7 years of experience overall", 7},
		{"none", "fresh graduate", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExperienceYears(tt.text))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Node.Js", titleCase("node.js"))
	assert.Equal(t, "C++", titleCase("c++"))
	assert.Equal(t, "Machine Learning", titleCase("machine learning"))
	assert.Equal(t, "Aws", titleCase("AWS"))
}

func TestSummarize(t *testing.T) {
	p := NewProfile()
	p.Name = "Jane Doe"
	p.Email = "jane@example.com"
	p.Phone = "9876543210"
	p.Skills = []string{"Python", "Go"}
	p.ExperienceYears = 4

	s := Summarize(p)
	assert.Equal(t, 2, s.TotalSkillsFound)
	assert.True(t, s.HasContactInfo)
	assert.False(t, s.HasAddress)
	assert.Equal(t, "Mid Level", s.ExperienceLevel)
	assert.Equal(t, "Excellent", s.ExtractionQuality) // 20+20+15+20+15 = 90
}

func TestExperienceLevel(t *testing.T) {
	assert.Equal(t, "Entry Level", experienceLevel(0))
	assert.Equal(t, "Junior", experienceLevel(2))
	assert.Equal(t, "Mid Level", experienceLevel(5))
	assert.Equal(t, "Senior", experienceLevel(10))
	assert.Equal(t, "Expert", experienceLevel(11))
}

// crashingTagger fails mid-extraction the way a wedged NLP sidecar would.
type crashingTagger struct{}

func (crashingTagger) Entities(string) []Entity { panic("tagger offline") }
func (crashingTagger) Tokens(string) []Token    { return nil }

func TestExtract_TaggerPanicDegradesOnlyAddress(t *testing.T) {
	e := newTestExtractor(t, crashingTagger{})

	profile := e.Extract(sampleResume, "john_smith.pdf")
	require.NotNil(t, profile)

	// address is the only field fed by entity tagging
	assert.Empty(t, profile.Address)

	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "john.smith@example.com", profile.Email)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.Equal(t, 5, profile.ExperienceYears)
	assert.Contains(t, profile.Skills, "Python")
	assert.NotEmpty(t, profile.Education)
	assert.Equal(t, "github.com/johnsmith", profile.SocialLinks["github"])
}
