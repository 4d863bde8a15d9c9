// Package profile turns raw resume text into a structured candidate profile:
// identity and education entities, a fuzzy-matched skill list, and
// section-based experience and project entries.
package profile

import (
	"log/slog"

	"github.com/anatolykoptev/go_autofill/internal/engine"
)

// Profile is the structured result of parsing one resume.
type Profile struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	University    string       `json:"university"`
	Degree        string       `json:"degree"`
	GPA           string       `json:"gpa"`
	Skills        []string     `json:"skills"`
	Experience    []Experience `json:"experience"`
	Projects      []Project    `json:"projects"`
	ExtractedText string       `json:"extracted_text"`
}

// Build parses resume text into a Profile. rec may be nil; name extraction
// then relies on the shape heuristic alone. Build never fails: fields that
// cannot be found stay empty.
func Build(text string, rec NameRecognizer) *Profile {
	entities := ExtractEntities(text, rec)
	p := &Profile{
		Name:          entities.Name,
		Email:         entities.Email,
		Phone:         entities.Phone,
		University:    entities.University,
		Degree:        entities.Degree,
		GPA:           entities.GPA,
		Skills:        ExtractSkills(text),
		Experience:    extractExperience(text),
		Projects:      extractProjects(text),
		ExtractedText: text,
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	engine.IncrProfilesBuilt()
	slog.Debug("profile built",
		slog.String("name", p.Name),
		slog.Int("skills", len(p.Skills)),
		slog.Int("experience", len(p.Experience)))
	return p
}
