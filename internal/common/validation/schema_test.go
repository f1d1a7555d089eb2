package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"items"},
	"properties": map[string]interface{}{
		"items": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type": "number",
			},
		},
	},
}

func TestSchema_ValidateJSON(t *testing.T) {
	schema := MustCompile(testSchema)

	tests := []struct {
		name      string
		document  string
		valid     bool
		wantField string
		wantCode  string
	}{
		{name: "valid", document: `{"items":[1,2.5]}`, valid: true},
		{name: "missing field", document: `{}`, wantField: "(root)", wantCode: "REQUIRED"},
		{name: "empty array", document: `{"items":[]}`, wantField: "items", wantCode: "ARRAY_MIN_ITEMS"},
		{name: "wrong item type", document: `{"items":["a"]}`, wantField: "items.0", wantCode: "INVALID_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := schema.ValidateJSON([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Empty(t, result.Summary())
				return
			}
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
			assert.Equal(t, tt.wantCode, result.Errors[0].Code)
			assert.Contains(t, result.Summary(), tt.wantField)
		})
	}
}

func TestSchema_ValidateJSON_Unparseable(t *testing.T) {
	schema := MustCompile(testSchema)

	_, err := schema.ValidateJSON([]byte(`<html>bad gateway</html>`))
	assert.Error(t, err)
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile(map[string]interface{}{"type": 42})
	assert.Error(t, err)
}
