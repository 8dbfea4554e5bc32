package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisSchemaFile = "resume_analysis.schema.json"

func TestResumeAnalysisSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", analysisSchemaFile))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestResumeAnalysisSchema_AcceptsAnalyzerOutput(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", analysisSchemaFile))
	require.NoError(t, err)

	result := analysis.New(nil).Analyze("Python, Java, SQL\nEDUCATION\nBachelor of Science, State University\n")
	doc, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(data), string(doc)))
}

func TestResumeAnalysisSchema_AcceptsEmptyAnalysis(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", analysisSchemaFile))
	require.NoError(t, err)

	result := analysis.New(nil).Analyze("")
	doc, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(data), string(doc)))
}

func TestResumeAnalysisSchema_RejectsUnknownFields(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", analysisSchemaFile))
	require.NoError(t, err)

	doc := `{"skills": [], "education": [], "experience": [], "certifications": [], "extra": true}`
	assert.Error(t, schemas.ValidateJSONString(string(data), doc))
}
