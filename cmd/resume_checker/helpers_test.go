package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResumeRecord_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	content := `{
		"personalInfo": {"fullName": "Jane Smith", "email": "jane@acme.io"},
		"summary": "Engineer.",
		"experience": [],
		"education": [],
		"skills": ["Python"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rec, err := loadResumeRecord(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", rec.PersonalInfo.FullName)
	assert.Equal(t, []string{"Python"}, rec.Skills)
}

func TestLoadResumeRecord_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	// "summary" must be a string and the top-level sections are required.
	require.NoError(t, os.WriteFile(path, []byte(`{"summary": 42}`), 0644))

	_, err := loadResumeRecord(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoadResumeRecord_MissingFile(t *testing.T) {
	_, err := loadResumeRecord(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestWriteOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(path, []byte(`{"ok":true}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}

func TestMarshalIndent(t *testing.T) {
	data, err := marshalIndent(map[string]int{"score": 82})

	require.NoError(t, err)
	assert.Contains(t, string(data), "\"score\": 82")
}
