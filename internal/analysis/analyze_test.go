package analysis

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Candidate
jane@example.com
+1 555-123-4567

CAREER OBJECTIVE
To build reliable backend services

KEY SKILLS AND TOOLS
Python, SQL, Docker, Git, Linux

PROJECTS
• Developed a web app for order tracking
• Implemented a machine learning pipeline on Kaggle

EDUCATION
Bachelor of Technology, XYZ University
Intermediate, ABC College

CERTIFICATIONS
• AWS Certified Cloud Practitioner
• Coursera Machine Learning certificate
`

func TestAnalyze_FullResume(t *testing.T) {
	result := New(nil).Analyze(sampleResume)

	assert.Contains(t, result.Skills, "python")
	assert.Contains(t, result.Skills, "sql")
	assert.Contains(t, result.Skills, "docker")

	require.Len(t, result.Education, 2)
	assert.Equal(t, "Bachelor of Technology, XYZ University", result.Education[0])

	require.Len(t, result.Experience, 2)
	assert.Equal(t, "Developed a web app for order tracking", result.Experience[0])

	require.Len(t, result.Certifications, 2)
	assert.Equal(t, "AWS Certified Cloud Practitioner", result.Certifications[0])

	require.NotNil(t, result.Score)
	assert.GreaterOrEqual(t, *result.Score, 60)
	assert.LessOrEqual(t, *result.Score, 100)

	require.Len(t, result.Recommendations, 1)
	assert.Empty(t, result.Issues)
	assert.NotNil(t, result.Issues)
}

func TestAnalyze_SkillsWithoutSections(t *testing.T) {
	// Scenario: skills only, no section headers anywhere.
	result := New(nil).Analyze("Proficient in Python, Java, SQL")

	assert.Equal(t, []string{"python", "java", "sql"}, result.Skills)
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Certifications)

	require.NotNil(t, result.Score)
	assert.Equal(t, 60, *result.Score)

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Based on your skills in python, java, sql, consider roles in Software Development", result.Recommendations[0])
}

func TestAnalyze_EmptyText(t *testing.T) {
	result := New(nil).Analyze("")

	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Certifications)
	assert.Empty(t, result.Recommendations)

	require.NotNil(t, result.Score)
	assert.Equal(t, 0, *result.Score)
}

func TestAnalyze_TwelveSkillsCapAtEighty(t *testing.T) {
	text := "python java css javascript html sql git react angular docker aws linux"

	result := New(nil).Analyze(text)

	require.Len(t, result.Skills, 12)
	require.NotNil(t, result.Score)
	assert.Equal(t, 80, *result.Score)
}

func TestAnalyze_ContactLinesNeverInCategories(t *testing.T) {
	text := "PROJECTS\nContact: john@example.com\nDeveloped a web app\nEDUCATION\nreach me on linkedin\nBachelor of Science\nCERTIFICATIONS\n+1 555-000-1111 certified hotline\nUdemy certificate\n"

	result := New(nil).Analyze(text)

	for _, category := range [][]string{result.Education, result.Experience, result.Certifications} {
		for _, line := range category {
			assert.False(t, IsContactInfo(line), "contact line leaked into output: %q", line)
		}
	}
}

func TestAnalyze_IndependentOfExtractorOrder(t *testing.T) {
	// Running twice over the same text yields identical results.
	analyzer := New(nil)

	first := analyzer.Analyze(sampleResume)
	second := analyzer.Analyze(sampleResume)

	assert.Equal(t, first, second)
}

func TestAnalyze_CustomVocabulary(t *testing.T) {
	vocab := vocabulary.New([]string{"Go", "Kubernetes"})

	result := New(vocab).Analyze("Go services on Kubernetes")

	assert.Equal(t, []string{"Go", "Kubernetes"}, result.Skills)
}
