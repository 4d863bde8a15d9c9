package profile

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/anatolykoptev/go_autofill/internal/engine"
)

const (
	maxSkills     = 15
	skillScoreMin = 90 // fuzzy score must exceed this, not reach it
)

// ExtractSkills returns vocabulary skills found in resume text, in canonical
// casing, capped at 15. Matching runs in three passes: multi-word phrases by
// substring, single tokens by fuzzy score against the vocabulary, and a final
// vocabulary substring sweep that catches entries the tokenizer splits.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	skills := []string{}
	add := func(s string) {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, s)
		}
	}

	for _, phrase := range multiWordSkills {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			add(phrase)
		}
	}

	for _, tok := range engine.Tokenize(text) {
		if len(tok) < 2 || skillStopWords[strings.ToLower(tok)] {
			continue
		}
		best := ""
		bestScore := 0
		for _, cand := range skillVocabulary {
			if score := fuzzy.WRatio(tok, cand); score > bestScore {
				bestScore = score
				best = cand
			}
		}
		if bestScore > skillScoreMin {
			add(best)
		}
	}

	for _, cand := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(cand)) {
			add(cand)
		}
	}

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}
