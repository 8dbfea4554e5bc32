package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_OrderAndMembership(t *testing.T) {
	vocab := Default()

	terms := vocab.Terms()
	require.NotEmpty(t, terms)
	assert.Equal(t, "python", terms[0])
	assert.Equal(t, "java", terms[1])

	assert.True(t, vocab.Contains("python"))
	assert.True(t, vocab.Contains("PYTHON"))
	assert.True(t, vocab.Contains("machine learning"))
	assert.False(t, vocab.Contains("cobol"))
}

func TestNew_DeduplicatesCaseInsensitively(t *testing.T) {
	vocab := New([]string{"Go", "go", "GO", "Rust"})

	require.Equal(t, 2, vocab.Len())
	assert.Equal(t, []string{"Go", "Rust"}, vocab.Terms())
}

func TestNew_DropsBlankEntries(t *testing.T) {
	vocab := New([]string{"", "  ", "Go"})

	assert.Equal(t, []string{"Go"}, vocab.Terms())
}

func TestTerms_ReturnsCopy(t *testing.T) {
	vocab := New([]string{"Go", "Rust"})

	terms := vocab.Terms()
	terms[0] = "mutated"

	assert.Equal(t, []string{"Go", "Rust"}, vocab.Terms())
}

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Go", "Rust", "go"]`), 0644))

	vocab, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, vocab.Terms())
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read vocabulary file")
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vocabulary JSON")
}

func TestLoadFile_EmptyVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "contains no terms")
}
