// Package types provides type definitions for structured data used throughout the resume analyzer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeAnalysis is the result of analyzing one resume document.
// The four category lists are always present (possibly empty, never null);
// recommendations, score and issues are nullable for API compatibility but
// are always populated by the analyzer. No field is mutated after assembly.
type ResumeAnalysis struct {
	Skills          []string `json:"skills"`
	Education       []string `json:"education"`
	Experience      []string `json:"experience"`
	Certifications  []string `json:"certifications"`
	Recommendations []string `json:"recommendations"`
	Score           *int     `json:"score"`
	// Issues is reserved for future diagnostics and is always empty.
	Issues []string `json:"issues"`
}

// AnalyzeTextRequest represents the request body for POST /api/analyze/text.
type AnalyzeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
