package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probabilitySchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"Farming level": {"type": "integer", "minimum": 0},
			"Gold": {"type": ["number", "string"]}
		},
		"required": ["Farming level", "Gold"]
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "prob.schema.json", probabilitySchema)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid rows", data: `[{"Farming level": 1, "Gold": "3%"}, {"Farming level": 2, "Gold": 5}]`},
		{name: "empty array", data: `[]`},
		{name: "missing required field", data: `[{"Farming level": 1}]`, errorMsg: "required"},
		{name: "wrong type", data: `[{"Farming level": "one", "Gold": 3}]`, errorMsg: "/0/Farming level"},
		{name: "below minimum", data: `[{"Farming level": -1, "Gold": 3}]`, errorMsg: "minimum"},
		{name: "not an array", data: `{"Farming level": 1}`, errorMsg: "(root)"},
		{name: "invalid JSON", data: `[{"Farming level": }]`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	v := NewSchemaValidator()
	schemaPath := writeFile(t, dir, "prob.schema.json", probabilitySchema)

	dataPath := writeFile(t, dir, "prob.json", `[{"Farming level": 3, "Gold": "7%"}]`)
	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")

	err = v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "prob.schema.json", probabilitySchema)

	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestShippedSchemasAcceptShippedData(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		data   string
		schema string
	}{
		{"../../configs/data/crops.json", "configs/schemas/crops.schema.json"},
		{"../../configs/data/probabilities.json", "configs/schemas/probabilities.schema.json"},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.data), func(t *testing.T) {
			assert.NoError(t, v.ValidateFile(tt.data, tt.schema))
		})
	}
}

func TestShippedCropSchema_RequiresPerSeasonForMulti(t *testing.T) {
	v := NewSchemaValidator()
	data := `[{"Crop":"Corn","Season":"Summer","Type":"Multi","Seed":150,"Base":50,"Silver":62,"Gold":75,
		"Tiller Base":55,"Tiller Silver":68,"Tiller Gold":82}]`

	err := v.ValidateBytes([]byte(data), "configs/schemas/crops.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/0")
}

func TestResolveSchemaPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.json")
	got, err := resolveSchemaPath(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	got, err = resolveSchemaPath("configs/schemas/crops.schema.json")
	require.NoError(t, err)
	assert.FileExists(t, got)

	_, err = resolveSchemaPath("configs/schemas/nope.schema.json")
	assert.Error(t, err)
}
