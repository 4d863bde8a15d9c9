// Package evaluate scores a generated application package (resume bullets
// plus cover letter) against a job description and the candidate profile.
// Scores are heuristic: keyword overlap, ATS-friendliness, readability,
// profile coverage, and internal consistency.
package evaluate

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

// Package is the content being evaluated.
type Package struct {
	Bullets     []string `json:"bullets"`
	CoverLetter string   `json:"cover_letter"`
}

// Scores are 0-100, rounded to two decimals.
type Scores struct {
	Relevance    float64 `json:"relevance_score"`
	ATS          float64 `json:"ats_score"`
	Readability  float64 `json:"readability_score"`
	Completeness float64 `json:"completeness_score"`
	Consistency  float64 `json:"consistency_score"`
	Overall      float64 `json:"overall_score"`
}

// KeywordAnalysis details the keyword overlap with the posting.
type KeywordAnalysis struct {
	TotalJobKeywords int      `json:"total_job_keywords"`
	Matched          []string `json:"matched_keywords"`
	Missing          []string `json:"missing_keywords"`
	MatchPercentage  float64  `json:"match_percentage"`
}

// Result is a full evaluation.
type Result struct {
	Scores          Scores           `json:"scores"`
	Keywords        KeywordAnalysis  `json:"keyword_matches"`
	ATSIssues       []string         `json:"ats_issues"`
	Readability     ReadabilityStats `json:"readability_stats"`
	MissingElements []string         `json:"missing_elements"`
}

// Weighted contribution of each score to the overall.
const (
	weightRelevance    = 0.3
	weightATS          = 0.25
	weightReadability  = 0.2
	weightCompleteness = 0.15
	weightConsistency  = 0.1
)

// professionalKeywordRe names the technical and professional terms that count
// toward relevance.
var professionalKeywordRe = regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|React|Node\.js|Django|Flask|` +
	`Machine Learning|ML|AI|Data Science|TensorFlow|PyTorch|` +
	`AWS|Azure|Docker|Kubernetes|Git|SQL|MongoDB|` +
	`leadership|management|development|analysis|optimization|` +
	`collaboration|communication|problem-solving)\b`)

var actionVerbs = []string{"developed", "implemented", "created", "managed", "led", "improved", "optimized"}

var quantifiedRe = regexp.MustCompile(`\d+%|\d+\+|\$\d+|\d+ years?|\d+ projects?`)

var specialCharRe = regexp.MustCompile(`[^\w\s]`)

// Evaluate scores pkg against the posting and profile. p may be nil when no
// profile is available; completeness then scores on package shape alone.
func Evaluate(jobDescription string, p *profile.Profile, pkg Package) *Result {
	combined := combineText(pkg)

	relevance := relevanceScore(jobDescription, combined)
	ats, atsIssues := atsScore(pkg)
	readability := readabilityScore(combined)
	completeness := completenessScore(p, pkg, combined)
	consistency := consistencyScore(pkg, combined)

	overall := relevance*weightRelevance +
		ats*weightATS +
		readability*weightReadability +
		completeness*weightCompleteness +
		consistency*weightConsistency

	r := &Result{
		Scores: Scores{
			Relevance:    round2(relevance * 100),
			ATS:          round2(ats * 100),
			Readability:  round2(readability * 100),
			Completeness: round2(completeness * 100),
			Consistency:  round2(consistency * 100),
			Overall:      round2(overall * 100),
		},
		Keywords:        analyzeKeywords(jobDescription, combined),
		ATSIssues:       atsIssues,
		Readability:     readabilityStats(combined),
		MissingElements: missingElements(p, pkg, combined),
	}
	engine.IncrEvaluationsRun()
	slog.Debug("package evaluated",
		slog.Float64("overall", r.Scores.Overall),
		slog.Int("ats_issues", len(r.ATSIssues)))
	return r
}

func combineText(pkg Package) string {
	parts := append([]string{}, pkg.Bullets...)
	if pkg.CoverLetter != "" {
		parts = append(parts, pkg.CoverLetter)
	}
	return strings.Join(parts, " ")
}

// extractKeywords returns the deduplicated lowercased professional keywords
// in text, sorted for determinism.
func extractKeywords(text string) []string {
	seen := make(map[string]bool)
	for _, kw := range professionalKeywordRe.FindAllString(text, -1) {
		seen[strings.ToLower(kw)] = true
	}
	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// relevanceScore is the fraction of posting keywords that appear in the
// generated content.
func relevanceScore(jobDescription, content string) float64 {
	jdKeywords := extractKeywords(jobDescription)
	if len(jdKeywords) == 0 {
		return 0
	}
	contentKeywords := make(map[string]bool)
	for _, kw := range extractKeywords(content) {
		contentKeywords[kw] = true
	}
	overlap := 0
	for _, kw := range jdKeywords {
		if contentKeywords[kw] {
			overlap++
		}
	}
	return min(1.0, float64(overlap)/float64(len(jdKeywords)))
}

// atsScore estimates how cleanly the package passes applicant tracking
// systems. Starts at 1.0 and adjusts per bullet.
func atsScore(pkg Package) (float64, []string) {
	score := 1.0
	issues := []string{}

	for _, bullet := range pkg.Bullets {
		if float64(len(specialCharRe.FindAllString(bullet, -1))) > float64(len(bullet))*0.2 {
			score -= 0.05
			issues = append(issues, "Excessive special characters")
		}
		if quantifiedRe.MatchString(bullet) {
			score += 0.02
		}
		if len(strings.Fields(bullet)) > 25 {
			score -= 0.03
			issues = append(issues, "Overly long bullet points")
		}
		lower := strings.ToLower(bullet)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				score += 0.01
				break
			}
		}
	}

	if pkg.CoverLetter != "" {
		words := len(strings.Fields(pkg.CoverLetter))
		if words >= 150 && words <= 250 {
			score += 0.05
		} else if words < 100 || words > 400 {
			score -= 0.05
			issues = append(issues, "Sub-optimal cover letter length")
		}
	}

	return max(min(score, 1.0), 0), issues
}

// completenessScore measures how much of the profile the package represents:
// skill coverage 40%, education 20%, experience keywords 20%, bullets and
// cover letter presence 10% each.
func completenessScore(p *profile.Profile, pkg Package, combined string) float64 {
	lower := strings.ToLower(combined)
	score := 0.0
	total := 0.0

	if p != nil && len(p.Skills) > 0 {
		mentioned := 0
		for _, skill := range p.Skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				mentioned++
			}
		}
		score += float64(mentioned) / float64(len(p.Skills)) * 0.4
		total += 0.4
	}

	if p != nil {
		education := p.Degree
		if education == "" {
			education = p.University
		}
		if education != "" && strings.Contains(lower, strings.ToLower(education)) {
			score += 0.2
		}
	}
	total += 0.2

	if p != nil && len(p.Experience) > 0 {
		for _, kw := range []string{"experience", "worked", "developed", "managed", "project"} {
			if strings.Contains(lower, kw) {
				score += 0.2
				break
			}
		}
	}
	total += 0.2

	if len(pkg.Bullets) > 0 {
		score += 0.1
	}
	total += 0.1
	if pkg.CoverLetter != "" {
		score += 0.1
	}
	total += 0.1

	if total == 0 {
		return 0
	}
	return score / total
}

var formalToneRe = regexp.MustCompile(`(?i)\b(?:utilize|facilitate|implement|optimize)\b`)
var casualToneRe = regexp.MustCompile(`(?i)\b(?:use|help|make|improve)\b`)

// consistencyScore checks tone uniformity and sentence repetition across the
// package.
func consistencyScore(pkg Package, combined string) float64 {
	if len(pkg.Bullets) == 0 && pkg.CoverLetter == "" {
		return 0
	}
	score := 1.0

	formal := len(formalToneRe.FindAllString(combined, -1))
	casual := len(casualToneRe.FindAllString(combined, -1))
	if formal > 0 && casual > 0 {
		lo, hi := formal, casual
		if lo > hi {
			lo, hi = hi, lo
		}
		if float64(lo)/float64(hi) < 0.3 {
			score -= 0.15
		}
	}

	var valid []string
	unique := make(map[string]bool)
	for _, sentence := range sentenceEndRe.Split(combined, -1) {
		s := strings.TrimSpace(sentence)
		if len(s) > 10 {
			valid = append(valid, s)
			unique[strings.ToLower(s)] = true
		}
	}
	if len(valid) > 0 {
		uniqueness := float64(len(unique)) / float64(len(valid))
		score += (uniqueness - 0.8) * 0.5
	}

	return max(min(score, 1.0), 0)
}

func analyzeKeywords(jobDescription, combined string) KeywordAnalysis {
	jdKeywords := extractKeywords(jobDescription)
	pkgKeywords := make(map[string]bool)
	for _, kw := range extractKeywords(combined) {
		pkgKeywords[kw] = true
	}
	matched := []string{}
	missing := []string{}
	for _, kw := range jdKeywords {
		if pkgKeywords[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	pct := 0.0
	if len(jdKeywords) > 0 {
		pct = float64(len(matched)) / float64(len(jdKeywords)) * 100
	}
	return KeywordAnalysis{
		TotalJobKeywords: len(jdKeywords),
		Matched:          matched,
		Missing:          missing,
		MatchPercentage:  round2(pct),
	}
}

func missingElements(p *profile.Profile, pkg Package, combined string) []string {
	missing := []string{}
	lower := strings.ToLower(combined)

	if p != nil && len(p.Skills) > 0 {
		mentioned := 0
		for _, skill := range p.Skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				mentioned++
			}
		}
		want := len(p.Skills)
		if want > 3 {
			want = 3
		}
		if mentioned < want {
			missing = append(missing, "Key skills not adequately represented")
		}
	}

	if p != nil && p.University != "" && !strings.Contains(lower, strings.ToLower(p.University)) {
		missing = append(missing, "University/education not mentioned")
	}

	if len(pkg.Bullets) < 3 {
		missing = append(missing, "Insufficient bullet points (recommended: 3-5)")
	}

	return missing
}

// Report renders the result as a human-readable text report.
func (r *Result) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Application Package Evaluation\n\n")
	fmt.Fprintf(&sb, "Overall Score: %.2f/100\n\n", r.Scores.Overall)
	fmt.Fprintf(&sb, "## Detailed Scores\n")
	fmt.Fprintf(&sb, "- Relevance: %.2f/100\n", r.Scores.Relevance)
	fmt.Fprintf(&sb, "- ATS Compatibility: %.2f/100\n", r.Scores.ATS)
	fmt.Fprintf(&sb, "- Readability: %.2f/100\n", r.Scores.Readability)
	fmt.Fprintf(&sb, "- Completeness: %.2f/100\n", r.Scores.Completeness)
	fmt.Fprintf(&sb, "- Consistency: %.2f/100\n\n", r.Scores.Consistency)
	fmt.Fprintf(&sb, "## Keyword Analysis\n")
	fmt.Fprintf(&sb, "- Job keywords identified: %d\n", r.Keywords.TotalJobKeywords)
	fmt.Fprintf(&sb, "- Keywords matched: %d\n", len(r.Keywords.Matched))
	fmt.Fprintf(&sb, "- Match percentage: %.1f%%\n", r.Keywords.MatchPercentage)
	if len(r.Keywords.Missing) > 0 {
		show := r.Keywords.Missing
		if len(show) > 5 {
			show = show[:5]
		}
		fmt.Fprintf(&sb, "- Missing keywords: %s\n", strings.Join(show, ", "))
	}
	if len(r.ATSIssues) > 0 {
		fmt.Fprintf(&sb, "\n## ATS Issues\n")
		for _, issue := range r.ATSIssues {
			fmt.Fprintf(&sb, "- %s\n", issue)
		}
	}
	if len(r.MissingElements) > 0 {
		fmt.Fprintf(&sb, "\n## Missing Elements\n")
		for _, el := range r.MissingElements {
			fmt.Fprintf(&sb, "- %s\n", el)
		}
	}
	fmt.Fprintf(&sb, "\n## Recommendations\n")
	if r.Scores.Relevance < 70 {
		fmt.Fprintf(&sb, "- Improve relevance by including more job-specific keywords\n")
	}
	if r.Scores.ATS < 80 {
		fmt.Fprintf(&sb, "- Optimize for ATS by adding quantifiable achievements\n")
	}
	if r.Scores.Readability < 75 {
		fmt.Fprintf(&sb, "- Improve readability by simplifying sentence structure\n")
	}
	return sb.String()
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
