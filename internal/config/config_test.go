package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"resume": "resume.json",
		"format": "json",
		"verbose": true,
		"port": 9090
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "resume.json", cfg.Resume)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.Port)
	assert.Empty(t, cfg.Dir)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusivePaths(t *testing.T) {
	cfg := &Config{Resume: "a.json", Dir: "resumes"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_BadFormat(t *testing.T) {
	cfg := &Config{Format: "yaml"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'format'")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	require.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.json")}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingResumeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	cfg := &Config{Resume: path, Format: "text"}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Resume: "mine.json", Format: "json"}
	defaults := Config{Resume: "default.json", Format: "text", Output: "out.json", Port: 8080, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win, gaps fill from defaults.
	assert.Equal(t, "mine.json", merged.Resume)
	assert.Equal(t, "json", merged.Format)
	assert.Equal(t, "out.json", merged.Output)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
}
