package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/vocabulary"
)

var (
	analyzeValidate   bool
	analyzeVocabulary string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local resume document and print the result as JSON",
	Long:  `Extract text from a PDF, DOCX or TXT resume, run the analysis pipeline and print the ResumeAnalysis JSON to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the output against the ResumeAnalysis JSON schema")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to a JSON skill vocabulary file (defaults to the built-in set)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	kind := extraction.KindForFilename(path)
	if kind == "" {
		return fmt.Errorf("unsupported file type: %s (expected .pdf, .docx or .txt)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := extraction.ExtractText(kind, data)
	if err != nil {
		return err
	}

	vocab := vocabulary.Default()
	if analyzeVocabulary != "" {
		vocab, err = vocabulary.LoadFile(analyzeVocabulary)
		if err != nil {
			return err
		}
	}

	result := analysis.New(vocab).Analyze(text)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if analyzeValidate {
		schemaPath := schemas.ResolveSchemaPath("schemas/resume_analysis.schema.json")
		if schemaPath == "" {
			return fmt.Errorf("could not locate schemas/resume_analysis.schema.json")
		}
		if err := schemas.ValidateJSONFile(schemaPath, out); err != nil {
			return fmt.Errorf("analysis output failed schema validation: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
