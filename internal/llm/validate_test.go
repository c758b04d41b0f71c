package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func numberSchema() *Schema {
	return &Schema{
		Name: "test-number",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"value": map[string]any{"type": []any{"number", "null"}},
			},
			"required":             []any{"value"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid number", `{"value": 3.5}`, false},
		{"valid null", `{"value": null}`, false},
		{"missing field", `{}`, true},
		{"wrong type", `{"value": "three"}`, true},
		{"extra field", `{"value": 1, "extra": true}`, true},
		{"not json", `value: 3`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(numberSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("validateResponse(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				var invResp *ErrInvalidResponse
				if !errors.As(err, &invResp) {
					t.Errorf("validateResponse(%s) error type = %T, want ErrInvalidResponse", tt.raw, err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("validateResponse(nil schema) error = %v, want nil", err)
	}
}

func TestSchemaCompileCached(t *testing.T) {
	s := numberSchema()
	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("getCompiledSchema() error = %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("getCompiledSchema() second call error = %v", err)
	}
	if first != second {
		t.Errorf("getCompiledSchema() recompiled an already-cached schema")
	}
}
