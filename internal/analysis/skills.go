package analysis

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

// MatchSkills returns every vocabulary term contained in text, checked as a
// case-insensitive substring of the full document. Terms are reported in
// vocabulary scan order with their original casing; no term appears twice.
// This is whole-substring matching, not word matching, so a term that happens
// to be a substring of a longer word still counts.
func MatchSkills(text string, vocab *vocabulary.Vocabulary) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, term := range vocab.Terms() {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}
