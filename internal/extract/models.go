// internal/extract/models.go
package extract

// Profile holds the best-effort attributes extracted from one resume.
// Empty string / empty slice / 0 are the "not found" sentinels; extraction
// never reports an error to the caller.
type Profile struct {
	Name            string            `json:"name,omitempty"`
	Email           string            `json:"email,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Address         string            `json:"address,omitempty"`
	Skills          []string          `json:"skills"`
	ExperienceYears int               `json:"experience_years"`
	Education       []string          `json:"education"`
	Certifications  []string          `json:"certifications"`
	Languages       []string          `json:"languages"`
	SocialLinks     map[string]string `json:"social_links"`
}

// NewProfile returns a zero-value profile with collections initialized, so
// callers never see nil slices or maps.
func NewProfile() *Profile {
	return &Profile{
		Skills:         []string{},
		Education:      []string{},
		Certifications: []string{},
		Languages:      []string{},
		SocialLinks:    map[string]string{},
	}
}

// Entity is a named-entity span produced by an external Tagger.
type Entity struct {
	Text  string
	Label string
}

// Token is a part-of-speech tagged token produced by an external Tagger.
type Token struct {
	Text string
	POS  string
}

// Tagger is the optional NER/POS collaborator. When only a degenerate
// implementation is available the address and skill-widening passes are
// skipped silently; that is functional degradation, not failure.
type Tagger interface {
	Entities(text string) []Entity
	Tokens(text string) []Token
}

// NopTagger is the degenerate Tagger: it recognizes nothing.
type NopTagger struct{}

func (NopTagger) Entities(string) []Entity { return nil }
func (NopTagger) Tokens(string) []Token    { return nil }

// TextExtractor is the file-to-text collaborator contract. The core never
// calls it; front ends convert uploads to plain text before handing the
// text to the analyzer. An empty string means extraction failed upstream
// and must produce empty results here, never an error.
type TextExtractor interface {
	Extract(file string) (string, error)
}
