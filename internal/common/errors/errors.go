// Package errors provides standardized error handling for the scanner core.
//
// These errors are internal bookkeeping only: the public extraction and
// scoring contracts collapse every failure to a documented empty sentinel
// (nil/zero/empty collection) and never propagate an error to the caller.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeExtractionFieldFailed ErrorCode = "EXTRACTION_FIELD_FAILED"

	ErrCodeSkillScoreFailed      ErrorCode = "SKILL_SCORE_FAILED"
	ErrCodeExperienceScoreFailed ErrorCode = "EXPERIENCE_SCORE_FAILED"
	ErrCodeEducationScoreFailed  ErrorCode = "EDUCATION_SCORE_FAILED"
	ErrCodeSemanticScoreFailed   ErrorCode = "SEMANTIC_SCORE_FAILED"
	ErrCodeScoringFailed         ErrorCode = "SCORING_FAILED"

	ErrCodeModelLoadFailed  ErrorCode = "MODEL_LOAD_FAILED"
	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewExtractionFieldError marks a single sub-extractor failure. The field's
// value degrades to its empty sentinel; sibling extractors are unaffected.
func NewExtractionFieldError(field string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtractionFieldFailed,
		Message:   fmt.Sprintf("Extraction of field '%s' failed", field),
		Details:   err.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewSkillScoreError creates a non-retryable skill scoring error.
func NewSkillScoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSkillScoreFailed,
		Message:   "Skill score computation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExperienceScoreError creates a non-retryable experience scoring error.
func NewExperienceScoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExperienceScoreFailed,
		Message:   "Experience score computation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEducationScoreError creates a non-retryable education scoring error.
func NewEducationScoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEducationScoreFailed,
		Message:   "Education score computation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSemanticScoreError creates a retryable semantic provider error.
func NewSemanticScoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSemanticScoreFailed,
		Message:   "Semantic similarity provider error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewScoringFailedError marks a catastrophic failure of the scoring
// orchestration itself. The caller still receives a fully-zeroed breakdown
// with fit category "Error".
func NewScoringFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeScoringFailed,
		Message:   "Score composition failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelLoadError creates a retryable embedding model initialization error.
func NewModelLoadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelLoadFailed,
		Message:   "Embedding model initialization failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error. Caching is a
// pure optimization, so callers fall through to computing the value.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Score cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Analyze request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable checks if an error is a retryable StandardError.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "EXTRACTION"):
		return "EXTRACTION"
	case strings.Contains(codeStr, "SCORE") || strings.Contains(codeStr, "SCORING"):
		return "SCORING"
	case strings.Contains(codeStr, "MODEL"):
		return "MODEL"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
