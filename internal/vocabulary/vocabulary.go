// Package vocabulary defines the set of known skill terms matched against resume text.
package vocabulary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// defaultTerms is the built-in skill list. Declaration order is the scan
// order, so match output is deterministic.
var defaultTerms = []string{
	"python", "java", "c++", "machine learning", "data analysis", "css", "javascript", "node.js",
	"html", "sql", "git", "github", "react", "angular", "docker", "aws", "azure", "linux",
	"tensorflow", "keras", "pandas", "numpy", "scikit-learn", "flask", "django", "excel",
	"power bi", "tableau", "communication", "leadership", "project management",
}

// Vocabulary is an ordered, duplicate-free collection of skill terms with
// case-insensitive membership lookup. It is read-only after construction and
// safe to share across concurrent analyses.
type Vocabulary struct {
	terms  []string
	lookup map[string]struct{}
}

// New builds a Vocabulary from terms, dropping blank entries and
// case-insensitive duplicates while preserving first occurrence order and
// casing.
func New(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms:  make([]string, 0, len(terms)),
		lookup: make(map[string]struct{}, len(terms)),
	}
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, exists := v.lookup[key]; exists {
			continue
		}
		v.lookup[key] = struct{}{}
		v.terms = append(v.terms, term)
	}
	return v
}

// Default returns the built-in skill vocabulary.
func Default() *Vocabulary {
	return New(defaultTerms)
}

// LoadFile reads a vocabulary from a JSON file containing an array of strings.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	v := New(terms)
	if v.Len() == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no terms", path)
	}
	return v, nil
}

// Terms returns the vocabulary terms in scan order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Contains reports whether term is in the vocabulary, case-insensitively.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.lookup[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}
