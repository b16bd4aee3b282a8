package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": { "type": "string" },
		"count": { "type": "integer" }
	},
	"additionalProperties": false
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "ok", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 3}`)

	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "ok", "count": "three"}`)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "count", ve.Errors[0].Field)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)

	var le *SchemaLoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Error(), "failed to load schema")
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "ok"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}
