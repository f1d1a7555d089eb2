// Package errors provides standardized error handling for the emotion detection service.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDataFormat            ErrorCode = "DATA_FORMAT_ERROR"
	ErrCodeClassifierUnavailable ErrorCode = "CLASSIFIER_UNAVAILABLE"
	ErrCodeClassifierTimeout     ErrorCode = "CLASSIFIER_TIMEOUT"
	ErrCodeRequestBuildFailed    ErrorCode = "REQUEST_BUILD_FAILED"
	ErrCodeInternal              ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to the status returned to HTTP callers.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeClassifierUnavailable:
		return http.StatusBadGateway
	case ErrCodeClassifierTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Upstream Contract Errors
// ==========================

// DataFormatError reports a classifier response that does not have the expected
// shape. RawBody holds the full upstream payload for diagnosis.
type DataFormatError struct {
	StatusCode int
	RawBody    string
	Reason     string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf(
		"expected emotion data not found in API response (status %d): %s. Full response: %s",
		e.StatusCode, e.Reason, e.RawBody,
	)
}

// ToStandardError converts the data format error for logging and HTTP mapping.
func (e *DataFormatError) ToStandardError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDataFormat,
		Message:   "Unexpected classifier response format",
		Details:   e.Reason,
		Retryable: false,
		Metadata: map[string]interface{}{
			"statusCode": e.StatusCode,
			"rawBody":    e.RawBody,
		},
		Timestamp: time.Now().UTC(),
		Cause:     e,
	}
}

func NewDataFormatError(statusCode int, rawBody []byte, reason string) *DataFormatError {
	return &DataFormatError{
		StatusCode: statusCode,
		RawBody:    string(rawBody),
		Reason:     reason,
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewClassifierUnavailableError is returned when the classification endpoint cannot be reached.
func NewClassifierUnavailableError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierUnavailable,
		Message:   "Emotion classification service unavailable",
		Details:   fmt.Sprintf("endpoint: %s, error: %s", endpoint, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

func NewClassifierTimeoutError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierTimeout,
		Message:   "Emotion classification service timeout",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

func NewRequestBuildFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestBuildFailed,
		Message:   "Failed to build classification request",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		Cause:     err,
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATA_FORMAT"):
		return "UPSTREAM_CONTRACT"
	case strings.Contains(codeStr, "CLASSIFIER"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "REQUEST"):
		return "REQUEST"
	default:
		return "OTHER"
	}
}
