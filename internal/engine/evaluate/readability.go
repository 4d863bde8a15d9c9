package evaluate

import (
	"regexp"
	"strings"
)

// ReadabilityStats holds the readability measurements for a text.
type ReadabilityStats struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	WordCount          int     `json:"word_count"`
	SentenceCount      int     `json:"sentence_count"`
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

func countSentences(text string) int {
	return len(sentenceEndRe.FindAllString(text, -1))
}

// countSyllables approximates English syllables as vowel groups, discounting
// a silent trailing e. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// readabilityStats computes Flesch Reading Ease and Flesch-Kincaid grade for
// a text. With no sentence punctuation both formulas are left at zero and the
// caller falls back to word-count scoring.
func readabilityStats(text string) ReadabilityStats {
	words := strings.Fields(text)
	st := ReadabilityStats{
		WordCount:     len(words),
		SentenceCount: countSentences(text),
	}
	if st.WordCount == 0 || st.SentenceCount == 0 {
		return st
	}
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	wordsPerSentence := float64(st.WordCount) / float64(st.SentenceCount)
	syllablesPerWord := float64(syllables) / float64(st.WordCount)
	st.AvgSentenceLength = wordsPerSentence
	st.FleschReadingEase = 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	st.FleschKincaidGrade = 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
	return st
}

// readabilityScore maps readability stats to 0..1. Professional content reads
// best with Flesch 60-70 and grade level 8-12.
func readabilityScore(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	st := readabilityStats(text)
	if st.SentenceCount == 0 {
		return 0.5
	}

	var fleschNorm float64
	f := st.FleschReadingEase
	switch {
	case f >= 60 && f <= 70:
		fleschNorm = 1.0
	case (f >= 50 && f < 60) || (f > 70 && f <= 80):
		fleschNorm = 0.85
	default:
		fleschNorm = max(0, 1.0-abs(f-65)*0.02)
	}

	var fkNorm float64
	fk := st.FleschKincaidGrade
	if fk >= 8 && fk <= 12 {
		fkNorm = 1.0
	} else {
		fkNorm = max(0, 1.0-abs(fk-10)*0.1)
	}

	return min((fleschNorm+fkNorm)/2, 1.0)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
