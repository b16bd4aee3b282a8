package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-checker/internal/schemas"
	"github.com/jonathan/resume-checker/internal/types"
)

// loadResumeRecord reads a resume JSON file, validates it against the resume
// schema when the schema file can be located, and unmarshals it. Schema
// validation is skipped silently when the schema cannot be found (e.g. the
// binary runs outside the repo); the type contract still applies.
func loadResumeRecord(path string) (*types.ResumeRecord, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("resume file %s failed schema validation: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}
	return &rec, nil
}

// writeOutput writes data to the output path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// marshalIndent is the shared pretty-printer for CLI JSON output.
func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return data, nil
}
