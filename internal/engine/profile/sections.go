package profile

import (
	"regexp"
	"strings"
)

// Experience is one work entry from the experience section.
type Experience struct {
	Role        string `json:"role"`
	Description string `json:"description"`
}

// Project is one entry from the projects section.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	expStartRe  = regexp.MustCompile(`(?i)EXPERIENCE|WORK|INTERNSHIP`)
	expEndRe    = regexp.MustCompile(`(?i)EDUCATION|PROJECT|SKILL`)
	projStartRe = regexp.MustCompile(`(?i)PROJECTS?`)
	projEndRe   = regexp.MustCompile(`(?i)EXPERIENCE|EDUCATION|SKILL`)
)

var roleKeywords = []string{"intern", "engineer", "developer", "analyst"}

// sectionBody returns the text between the first start-heading match and the
// next end-heading match (or end of text).
func sectionBody(text string, start, end *regexp.Regexp) string {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if eloc := end.FindStringIndex(body); eloc != nil {
		body = body[:eloc[0]]
	}
	return body
}

// extractExperience pulls {role, description} entries out of the experience
// section. A line longer than 10 characters containing a role word opens a new
// entry; following non-empty lines accumulate into its description.
func extractExperience(text string) []Experience {
	body := sectionBody(text, expStartRe, expEndRe)
	if body == "" {
		return nil
	}
	var entries []Experience
	var cur *Experience
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 10 && containsAny(strings.ToLower(line), roleKeywords) {
			if cur != nil {
				entries = append(entries, *cur)
			}
			cur = &Experience{Role: line}
		} else if cur != nil && line != "" {
			cur.Description += line + " "
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// extractProjects pulls {title, description} entries out of the projects
// section. A non-bullet line of plausible title length opens a new entry.
func extractProjects(text string) []Project {
	body := sectionBody(text, projStartRe, projEndRe)
	if body == "" {
		return nil
	}
	var entries []Project
	var cur *Project
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 5 && len(line) < 100 &&
			!strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
			if cur != nil {
				entries = append(entries, *cur)
			}
			cur = &Project{Title: line}
		} else if cur != nil && line != "" {
			cur.Description += line + " "
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}
