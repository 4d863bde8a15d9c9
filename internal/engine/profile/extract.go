package profile

import (
	"regexp"
	"strings"
)

// Entities holds the scalar fields pulled from resume text. A field the
// extractor could not find is the empty string.
type Entities struct {
	Name       string
	Email      string
	Phone      string
	University string
	Degree     string
	GPA        string
}

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; more specific formats first so a country
// code is not swallowed by the bare 10-digit pattern.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+91[\s-]?[6-9]\d{9}`),
	regexp.MustCompile(`\+1[\s-]?\d{3}[\s-]?\d{3}[\s-]?\d{4}`),
	regexp.MustCompile(`[6-9]\d{9}`),
	regexp.MustCompile(`\d{10}`),
}

var universityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Indian Institute of Technology[^,\n]*`),
	regexp.MustCompile(`(?i)IIT [A-Za-z]+`),
	regexp.MustCompile(`(?i)National Institute of Technology[^,\n]*`),
	regexp.MustCompile(`(?i)NIT [A-Za-z]+`),
	regexp.MustCompile(`(?i)[A-Za-z\s]+ University`),
	regexp.MustCompile(`(?i)University of [A-Za-z\s]+`),
	regexp.MustCompile(`(?i)[A-Za-z\s]+ Institute of Technology`),
	regexp.MustCompile(`(?i)[A-Za-z\s]+ College`),
}

var universityLineKeywords = []string{"university", "institute", "college", "iit", "nit"}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.?Tech|Bachelor of Technology`),
	regexp.MustCompile(`(?i)M\.?Tech|Master of Technology`),
	regexp.MustCompile(`(?i)B\.?E\.?|Bachelor of Engineering`),
	regexp.MustCompile(`(?i)M\.?E\.?|Master of Engineering`),
	regexp.MustCompile(`(?i)PhD|Doctor of Philosophy`),
	regexp.MustCompile(`(?i)BSc|Bachelor of Science`),
	regexp.MustCompile(`(?i)MSc|Master of Science`),
	regexp.MustCompile(`(?i)MBA|Master of Business Administration`),
	regexp.MustCompile(`(?i)BCA|Bachelor of Computer Applications`),
	regexp.MustCompile(`(?i)MCA|Master of Computer Applications`),
}

var nameShapeRe = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+( [A-Z][a-z]+)?$`)

var gpaRe = regexp.MustCompile(`(?i)(GPA|CGPA|Grade)[\s:]*(\d+\.?\d*)`)

// ExtractEntities scans resume text for identity and education fields.
// rec may be nil; the regex name fallback still applies.
func ExtractEntities(text string, rec NameRecognizer) Entities {
	var e Entities
	e.Name = extractName(text, rec)

	for _, re := range universityPatterns {
		if m := re.FindString(text); m != "" {
			e.University = strings.TrimSpace(m)
			break
		}
	}
	if e.University == "" {
		e.University = universityFromLines(text)
	}

	e.Email = emailRe.FindString(text)

	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			e.Phone = m
			break
		}
	}

	for _, re := range degreePatterns {
		if m := re.FindString(text); m != "" {
			e.Degree = m
			break
		}
	}

	if m := gpaRe.FindStringSubmatch(text); m != nil {
		e.GPA = m[2]
	}

	return e
}

// extractName looks at the first ten lines for a candidate name. Lines with
// contact keywords are skipped; a candidate must be 2 to 4 words, 5 to 50
// characters, contain no digit or @, and not start with a section heading.
func extractName(text string, rec NameRecognizer) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if containsAny(lower, nameSkipKeywords) {
			continue
		}
		words := len(strings.Fields(line))
		if words < 2 || words > 4 {
			continue
		}
		if len(line) < 5 || len(line) > 50 {
			continue
		}
		if strings.ContainsAny(line, "0123456789@") {
			continue
		}
		if hasPrefixAny(lower, sectionKeywords) {
			continue
		}
		if rec != nil {
			if names := rec.PersonNames(line); len(names) > 0 {
				return names[0]
			}
		}
		if nameShapeRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// universityFromLines is the fallback when no pattern hit: any line that
// mentions a university keyword.
func universityFromLines(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsAny(strings.ToLower(line), universityLineKeywords) {
			return line
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
