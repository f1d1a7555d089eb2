// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"
)

// ErrorHandler normalizes and logs errors that reach the HTTP boundary.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle converts err to a StandardError, logs it and returns it.
func (h *ErrorHandler) Handle(err error, fields map[string]interface{}) *StandardError {
	stdErr := Normalize(err)
	h.logError(stdErr, fields)
	return stdErr
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}

	var dfErr *DataFormatError
	if stderrors.As(err, &dfErr) {
		return dfErr.ToStandardError()
	}

	return NewInternalError(err)
}

func (h *ErrorHandler) logError(stdErr *StandardError, fields map[string]interface{}) {
	out := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"status":        stdErr.HTTPStatus(),
	}
	for k, v := range stdErr.Metadata {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}

	h.logger.Error("Request failed", out)
}
