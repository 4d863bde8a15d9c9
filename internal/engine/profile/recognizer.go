package profile

import (
	"regexp"
	"strings"
)

// NameRecognizer reports person names found in a line of text. Implementations
// may wrap an NER model or service; extraction works without one.
type NameRecognizer interface {
	PersonNames(line string) []string
}

var honorifics = map[string]bool{
	"Mr": true, "Mrs": true, "Ms": true, "Dr": true, "Prof": true,
}

var capitalizedWordRe = regexp.MustCompile(`^[A-Z][a-z]+$`)

// HeuristicRecognizer is a dependency-free NameRecognizer. It accepts runs of
// two to four capitalized alphabetic words, skipping leading honorifics.
type HeuristicRecognizer struct{}

func (HeuristicRecognizer) PersonNames(line string) []string {
	words := strings.Fields(line)
	var names []string
	var run []string
	flush := func() {
		if len(run) >= 2 && len(run) <= 4 {
			names = append(names, strings.Join(run, " "))
		}
		run = nil
	}
	for _, w := range words {
		trimmed := strings.TrimSuffix(w, ".")
		if honorifics[trimmed] {
			flush()
			continue
		}
		if capitalizedWordRe.MatchString(w) {
			run = append(run, w)
		} else {
			flush()
		}
	}
	flush()
	return names
}
