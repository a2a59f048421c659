// internal/common/validation/schema.go

// Package validation checks analyze requests before they reach the core.
// Front ends call it at their boundary; the core itself tolerates empty
// inputs and never validates.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-scanner/internal/common/errors"
)

// Upper bounds keep a single pathological upload from dominating the
// scoring path. Texts are plain extracted text, so 100KB is generous.
const (
	MaxResumeLength         = 100_000
	MaxJobDescriptionLength = 50_000
	MaxFilenameLength       = 255
)

var analyzeRequestSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"resume_text": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"maxLength": MaxResumeLength,
		},
		"job_description": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"maxLength": MaxJobDescriptionLength,
		},
		"filename": map[string]interface{}{
			"type":      "string",
			"maxLength": MaxFilenameLength,
		},
	},
	"required":             []interface{}{"resume_text", "job_description"},
	"additionalProperties": false,
}

// ValidationError describes one failed constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome of validating one request document.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateAnalyzeRequest validates a decoded analyze request document
// against the request schema. The input is the generic JSON form a front
// end would have after unmarshaling the request body.
func ValidateAnalyzeRequest(document map[string]interface{}) (*Result, error) {
	schemaLoader := gojsonschema.NewGoLoader(analyzeRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	out := &Result{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}

// AsError converts an invalid Result into the internal INVALID_REQUEST
// error for logging and front-end responses. Returns nil for valid results.
func (r *Result) AsError() *errors.StandardError {
	if r == nil || r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Error())
	}
	return errors.NewInvalidRequestError(strings.Join(parts, "; "))
}
