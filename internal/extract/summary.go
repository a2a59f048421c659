// internal/extract/summary.go
package extract

// Summary condenses a Profile into quick completeness indicators for
// reports and dashboards.
type Summary struct {
	TotalSkillsFound   int    `json:"total_skills_found"`
	HasContactInfo     bool   `json:"has_contact_info"`
	HasAddress         bool   `json:"has_address"`
	ExperienceLevel    string `json:"experience_level"`
	EducationCount     int    `json:"education_count"`
	CertificationCount int    `json:"certification_count"`
	LanguageCount      int    `json:"language_count"`
	SocialProfiles     int    `json:"social_profiles"`
	ExtractionQuality  string `json:"extraction_quality"`
}

// Summarize builds the completeness summary for a profile.
func Summarize(p *Profile) Summary {
	return Summary{
		TotalSkillsFound:   len(p.Skills),
		HasContactInfo:     p.Email != "" || p.Phone != "",
		HasAddress:         p.Address != "",
		ExperienceLevel:    experienceLevel(p.ExperienceYears),
		EducationCount:     len(p.Education),
		CertificationCount: len(p.Certifications),
		LanguageCount:      len(p.Languages),
		SocialProfiles:     len(p.SocialLinks),
		ExtractionQuality:  extractionQuality(p),
	}
}

func experienceLevel(years int) string {
	switch {
	case years == 0:
		return "Entry Level"
	case years <= 2:
		return "Junior"
	case years <= 5:
		return "Mid Level"
	case years <= 10:
		return "Senior"
	default:
		return "Expert"
	}
}

// extractionQuality scores how much of the profile got filled in. The
// weights favor the fields the scorer actually consumes.
func extractionQuality(p *Profile) string {
	score := 0
	if p.Name != "" {
		score += 20
	}
	if p.Email != "" {
		score += 20
	}
	if p.Phone != "" {
		score += 15
	}
	if p.Address != "" {
		score += 10
	}
	if len(p.Skills) > 0 {
		score += 20
	}
	if p.ExperienceYears > 0 {
		score += 15
	}

	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}
