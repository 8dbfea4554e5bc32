package analysis

import (
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

// Analyzer runs the document analysis pipeline over raw resume text. It holds
// only the read-only skill vocabulary, so one Analyzer is safe to share
// across concurrent requests.
type Analyzer struct {
	vocab *vocabulary.Vocabulary
}

// New creates an Analyzer using vocab, or the default vocabulary when vocab
// is nil.
func New(vocab *vocabulary.Vocabulary) *Analyzer {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Analyzer{vocab: vocab}
}

// Analyze extracts skills, education, experience and certifications from
// text, scores the result and attaches recommendations. It is a pure
// function of text; the category extractors are independent of each other.
func (a *Analyzer) Analyze(text string) *types.ResumeAnalysis {
	skills := MatchSkills(text, a.vocab)
	education := ExtractEducation(text)
	experience := ExtractExperience(text)
	certifications := ExtractCertifications(text)

	score, issues := Score(skills, education, experience, certifications)

	return &types.ResumeAnalysis{
		Skills:          skills,
		Education:       education,
		Experience:      experience,
		Certifications:  certifications,
		Recommendations: Recommend(skills),
		Score:           &score,
		Issues:          issues,
	}
}
