package autofill

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

// Suggestion is one fill proposal for a form field.
type Suggestion struct {
	FieldName      string  `json:"field_name"`
	SuggestedValue string  `json:"suggested_value"`
	Confidence     float64 `json:"confidence"`
	Explanation    string  `json:"explanation"`
}

// Render produces the suggestion for a classified field. Absent profile data
// yields an empty value with zero confidence, never an error. Generated
// fields (cover letter, resume summary) carry a fixed confidence regardless
// of how much profile data fed them.
func Render(cat Category, p *profile.Profile, jobDescription, companyName string) Suggestion {
	var s Suggestion
	switch cat {
	case CategoryName:
		s = scalar(cat, p.Name, 0.95, "Your name from resume")
	case CategoryEmail:
		s = scalar(cat, p.Email, 0.95, "Your email from resume")
	case CategoryPhone:
		s = scalar(cat, p.Phone, 0.9, "Your phone number from resume")
	case CategoryUniversity:
		s = scalar(cat, p.University, 0.9, "Your university from resume")
	case CategoryDegree:
		s = scalar(cat, p.Degree, 0.85, "Your degree from resume")
	case CategoryGPA:
		s = scalar(cat, p.GPA, 0.8, "Your GPA from resume")
	case CategorySkills:
		top := p.Skills
		if len(top) > 10 {
			top = top[:10]
		}
		s = Suggestion{
			FieldName:      string(cat),
			SuggestedValue: strings.Join(top, ", "),
			Explanation:    fmt.Sprintf("Your top %d skills from resume", len(top)),
		}
		if len(top) > 0 {
			s.Confidence = 0.9
		}
	case CategoryExperience:
		s = scalar(cat, formatExperience(p.Experience), 0.8, "Your work experience from resume")
	case CategoryCoverLetter:
		s = Suggestion{
			FieldName:      string(cat),
			SuggestedValue: coverLetter(p, companyName, jobDescription),
			Confidence:     0.7,
			Explanation:    "Generated cover letter based on your profile",
		}
	case CategoryResume:
		s = Suggestion{
			FieldName:      string(cat),
			SuggestedValue: resumeSummary(p),
			Confidence:     0.8,
			Explanation:    "Summary of your resume",
		}
	default:
		s = Suggestion{
			FieldName:   string(cat),
			Explanation: "No suggestion available",
		}
	}

	// Low-confidence fields borrow context from the job description: skills
	// that appear verbatim in the posting make a usable value.
	if s.Confidence < 0.5 && jobDescription != "" {
		jdTokens := engine.TokenSet(jobDescription)
		var matched []string
		for _, skill := range p.Skills {
			if jdTokens[skill] {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			s.SuggestedValue = strings.Join(matched, ", ")
			s.Confidence = 0.7
			s.Explanation += " (matched to job description)"
			engine.IncrFallbackEnrichments()
		}
	}
	return s
}

func scalar(cat Category, value string, confidence float64, explanation string) Suggestion {
	s := Suggestion{
		FieldName:      string(cat),
		SuggestedValue: value,
		Explanation:    explanation,
	}
	if value != "" {
		s.Confidence = confidence
	}
	return s
}

// formatExperience renders up to three entries as "role: description"
// separated by " | ", truncating long descriptions at 100 characters.
func formatExperience(entries []profile.Experience) string {
	if len(entries) == 0 {
		return ""
	}
	if len(entries) > 3 {
		entries = entries[:3]
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		desc := engine.TruncateRunes(e.Description, 100, "...")
		parts = append(parts, fmt.Sprintf("%s: %s", e.Role, desc))
	}
	return strings.Join(parts, " | ")
}

func coverLetter(p *profile.Profile, companyName, jobDescription string) string {
	company := companyName
	if company == "" {
		company = "your company"
	}
	name := p.Name
	if name == "" {
		name = "Your Name"
	}
	university := p.University
	if university == "" {
		university = "my university"
	}
	degree := p.Degree
	if degree == "" {
		degree = "my degree"
	}

	topSkills := p.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	if len(topSkills) == 0 {
		topSkills = []string{"programming", "problem-solving", "teamwork"}
	}

	// Prefer skills the posting itself mentions.
	if jobDescription != "" && len(p.Skills) > 0 {
		jdWords := make(map[string]bool)
		for _, w := range strings.Fields(strings.ToLower(jobDescription)) {
			jdWords[w] = true
		}
		var matched []string
		for _, skill := range p.Skills {
			if jdWords[strings.ToLower(skill)] {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			if len(matched) > 3 {
				matched = matched[:3]
			}
			topSkills = matched
		}
	}
	skillsText := strings.Join(topSkills, ", ")

	return fmt.Sprintf(`Dear Hiring Manager,

I am excited to apply for this position at %s. As a %s student at %s, I have developed strong technical skills in %s.

Through my projects and experience, I have gained practical knowledge in software development and problem-solving. I am particularly interested in applying my skills to contribute to your team's success.

Thank you for considering my application.

Best regards,
%s`, company, degree, university, skillsText, name)
}

func resumeSummary(p *profile.Profile) string {
	topSkills := p.Skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s student at %s. ", p.Name, p.Degree, p.University)
	fmt.Fprintf(&sb, "Skills: %s. ", strings.Join(topSkills, ", "))
	if len(p.Experience) > 0 {
		fmt.Fprintf(&sb, "Experience: %s. ", p.Experience[0].Role)
	}
	if len(p.Projects) > 0 {
		fmt.Fprintf(&sb, "Key project: %s.", p.Projects[0].Title)
	}
	return sb.String()
}
