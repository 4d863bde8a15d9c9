// Package autofill classifies form fields into semantic categories and
// renders fill suggestions from a candidate profile.
package autofill

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/anatolykoptev/go_autofill/internal/engine"
)

// Category is the semantic type of a form field.
type Category string

const (
	CategoryName        Category = "name"
	CategoryEmail       Category = "email"
	CategoryPhone       Category = "phone"
	CategoryUniversity  Category = "university"
	CategoryDegree      Category = "degree"
	CategoryGPA         Category = "gpa"
	CategoryExperience  Category = "experience"
	CategorySkills      Category = "skills"
	CategoryCoverLetter Category = "cover_letter"
	CategoryResume      Category = "resume"
	CategoryUnknown     Category = "unknown"
)

// categoryKeywords maps each category to the field-name synonyms seen on job
// application forms. Order is fixed; ties resolve to the earlier entry.
var categoryKeywords = []struct {
	cat      Category
	keywords []string
}{
	{CategoryName, []string{"name", "full_name", "fullname", "candidate_name"}},
	{CategoryEmail, []string{"email", "email_address", "contact_email"}},
	{CategoryPhone, []string{"phone", "mobile", "contact_number", "phone_number"}},
	{CategoryUniversity, []string{"university", "college", "institution", "school"}},
	{CategoryDegree, []string{"degree", "qualification", "education", "major"}},
	{CategoryGPA, []string{"gpa", "cgpa", "grade", "percentage"}},
	{CategoryExperience, []string{"experience", "work_experience", "previous_role"}},
	{CategorySkills, []string{"skills", "technical_skills", "technologies"}},
	{CategoryCoverLetter, []string{"cover_letter", "why_interested", "motivation"}},
	{CategoryResume, []string{"resume", "cv", "resume_text"}},
}

const classifyScoreMin = 60

// Classify maps a form field to its Category by fuzzy-matching category
// keywords against the lowercased field name and label. Below the minimum
// score the field is unknown.
func Classify(fieldName, label string) Category {
	combined := strings.ToLower(fieldName + " " + label)
	best := CategoryUnknown
	bestScore := 0
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if score := fuzzy.PartialRatio(kw, combined); score > bestScore {
				bestScore = score
				best = entry.cat
			}
		}
	}
	engine.IncrFieldsClassified()
	if bestScore < classifyScoreMin {
		engine.IncrUnknownFields()
		return CategoryUnknown
	}
	return best
}
