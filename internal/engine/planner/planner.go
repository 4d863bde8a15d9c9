// Package planner analyzes a job description and turns it into an
// application strategy against a candidate profile: required skills, match
// score, and where to focus the application.
package planner

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

// Analysis is the structured reading of one job description.
type Analysis struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Skills             []string `json:"skills"`
	Keywords           []string `json:"keywords"`
	Seniority          string   `json:"seniority"`
	ExperienceRequired string   `json:"experience_required"`
	Education          string   `json:"education"`
	Location           string   `json:"location"`
	JobType            string   `json:"job_type"`
}

// ProjectSuggestion ranks one profile project against the posting.
type ProjectSuggestion struct {
	Title          string   `json:"title"`
	RelevanceScore int      `json:"relevance_score"`
	MatchingSkills []string `json:"matching_skills"`
}

// Strategy is the full application plan for a posting.
type Strategy struct {
	Analysis          Analysis            `json:"jd_analysis"`
	MatchingSkills    []string            `json:"matching_skills"`
	MissingSkills     []string            `json:"missing_skills"`
	MatchScore        float64             `json:"match_score"`
	RecommendedFocus  []string            `json:"recommended_focus"`
	SuggestedProjects []ProjectSuggestion `json:"suggested_projects"`
}

// jdSkillPatterns recognize technology mentions in job postings. Broader than
// the resume vocabulary since postings name skill families, not tools only.
var jdSkillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Python)\b`),
	regexp.MustCompile(`(?i)\b(Flask|Django|FastAPI)\b`),
	regexp.MustCompile(`(?i)\b(TensorFlow|PyTorch|Keras)\b`),
	regexp.MustCompile(`(?i)\b(React|Next\.js|Vue|Angular)\b`),
	regexp.MustCompile(`(?i)\b(Machine Learning|ML|Deep Learning|AI|Artificial Intelligence)\b`),
	regexp.MustCompile(`(?i)\b(Computer Vision|Image Processing)\b`),
	regexp.MustCompile(`(?i)\b(Natural Language Processing|NLP)\b`),
	regexp.MustCompile(`(?i)\b(Docker|Kubernetes|AWS|Azure|GCP)\b`),
	regexp.MustCompile(`(?i)\b(Git|GitHub|GitLab)\b`),
	regexp.MustCompile(`(?i)\b(SQL|MySQL|PostgreSQL|MongoDB)\b`),
	regexp.MustCompile(`(?i)\b(Node\.js|JavaScript|TypeScript)\b`),
	regexp.MustCompile(`(?i)\b(Java|C\+\+|C#|Go|Rust)\b`),
	regexp.MustCompile(`(?i)\b(Linux|Unix|Ubuntu)\b`),
	regexp.MustCompile(`(?i)\b(API|REST|GraphQL)\b`),
	regexp.MustCompile(`(?i)\b(Data Science|Analytics|Statistics)\b`),
}

var titleKeywords = []string{"intern", "engineer", "developer", "analyst", "scientist"}

// ExtractSkills pulls technology mentions from a job description, in first
// occurrence order, deduplicated case-insensitively.
func ExtractSkills(text string) []string {
	seen := make(map[string]bool)
	skills := []string{}
	for _, re := range jdSkillPatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			key := strings.ToLower(m)
			if !seen[key] {
				seen[key] = true
				skills = append(skills, m)
			}
		}
	}
	return skills
}

// Analyze reads a job description into an Analysis. HTML-pasted postings are
// normalized first.
func Analyze(jobDescription string) Analysis {
	text := engine.NormalizeDescription(jobDescription)
	lower := strings.ToLower(text)

	a := Analysis{
		Title:    "Unknown Role",
		Company:  "Unknown Company",
		Skills:   ExtractSkills(text),
		Location: "Unknown",
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if containsAny(strings.ToLower(line), titleKeywords) {
			a.Title = strings.TrimSpace(line)
			break
		}
	}

	switch {
	case containsAny(lower, []string{"intern", "internship"}):
		a.Seniority = "intern"
	case containsAny(lower, []string{"entry", "junior", "graduate"}):
		a.Seniority = "entry"
	case containsAny(lower, []string{"senior", "lead", "principal"}):
		a.Seniority = "senior"
	default:
		a.Seniority = "mid"
	}

	a.Keywords = a.Skills
	if len(a.Keywords) > 6 {
		a.Keywords = a.Keywords[:6]
	}
	a.Education = "Bachelor's degree"
	if a.Seniority == "intern" {
		a.ExperienceRequired = "none"
		a.JobType = "internship"
	} else {
		a.ExperienceRequired = "1-3 years"
		a.JobType = "full-time"
	}
	return a
}

// Plan builds the application strategy for a posting against a profile.
// Skill matching is bidirectional substring, case-insensitive, so "Node.js"
// on the resume matches "Node" in the posting and vice versa.
func Plan(jobDescription string, p *profile.Profile) Strategy {
	a := Analyze(jobDescription)

	matching := []string{}
	missing := []string{}
	for _, req := range a.Skills {
		if matchesAnySkill(req, p.Skills) {
			matching = append(matching, req)
		} else {
			missing = append(missing, req)
		}
	}

	var score float64
	if len(a.Skills) > 0 {
		score = float64(len(matching)) / float64(len(a.Skills))
	}

	s := Strategy{
		Analysis:          a,
		MatchingSkills:    matching,
		MissingSkills:     missing,
		MatchScore:        score,
		RecommendedFocus:  focusAreas(matching, p),
		SuggestedProjects: suggestProjects(a.Skills, p.Projects),
	}
	engine.IncrPlansComputed()
	slog.Debug("application plan computed",
		slog.String("title", a.Title),
		slog.Float64("match_score", score),
		slog.Int("missing_skills", len(missing)))
	return s
}

func matchesAnySkill(required string, skills []string) bool {
	reqLower := strings.ToLower(required)
	for _, s := range skills {
		sLower := strings.ToLower(s)
		if strings.Contains(sLower, reqLower) || strings.Contains(reqLower, sLower) {
			return true
		}
	}
	return false
}

// focusAreas names the profile entries worth emphasizing: projects and roles
// whose descriptions mention a matching skill.
func focusAreas(matching []string, p *profile.Profile) []string {
	areas := []string{}
	for _, proj := range p.Projects {
		text := strings.ToLower(proj.Title + " " + proj.Description)
		for _, skill := range matching {
			if strings.Contains(text, strings.ToLower(skill)) {
				areas = append(areas, fmt.Sprintf("Highlight %s project", proj.Title))
				break
			}
		}
	}
	for _, exp := range p.Experience {
		desc := strings.ToLower(exp.Description)
		for _, skill := range matching {
			if strings.Contains(desc, strings.ToLower(skill)) {
				areas = append(areas, fmt.Sprintf("Emphasize %s experience", exp.Role))
				break
			}
		}
	}
	return areas
}

// suggestProjects ranks projects by how many posting skills their text
// mentions and keeps the top three.
func suggestProjects(jdSkills []string, projects []profile.Project) []ProjectSuggestion {
	suggestions := []ProjectSuggestion{}
	for _, proj := range projects {
		text := strings.ToLower(proj.Title + " " + proj.Description)
		var matched []string
		for _, skill := range jdSkills {
			if strings.Contains(text, strings.ToLower(skill)) {
				matched = append(matched, skill)
			}
		}
		if len(matched) > 0 {
			suggestions = append(suggestions, ProjectSuggestion{
				Title:          proj.Title,
				RelevanceScore: len(matched),
				MatchingSkills: matched,
			})
		}
	}
	// Stable sort by score, document order on ties.
	for i := 1; i < len(suggestions); i++ {
		for j := i; j > 0 && suggestions[j].RelevanceScore > suggestions[j-1].RelevanceScore; j-- {
			suggestions[j], suggestions[j-1] = suggestions[j-1], suggestions[j]
		}
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
