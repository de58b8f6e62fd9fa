package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Extraction errors
	CodeExtractionFailed      ErrorCode = "EXTRACTION_FAILED"
	CodeEmptyContent          ErrorCode = "EMPTY_CONTENT"
	CodePDFUnreadable         ErrorCode = "PDF_UNREADABLE"
	CodeVideoIDNotFound       ErrorCode = "VIDEO_ID_NOT_FOUND"
	CodeTranscriptDisabled    ErrorCode = "TRANSCRIPT_DISABLED"
	CodeTranscriptNotFound    ErrorCode = "TRANSCRIPT_NOT_FOUND"
	CodeTranscriptUnavailable ErrorCode = "TRANSCRIPT_UNAVAILABLE"
	CodeTranscriptMalformed   ErrorCode = "TRANSCRIPT_MALFORMED"
	CodeWebsiteUnreachable    ErrorCode = "WEBSITE_UNREACHABLE"
	CodeWebsiteNoContent      ErrorCode = "WEBSITE_NO_CONTENT"

	// Generation and emit errors
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
	CodeNoRows          ErrorCode = "NO_ROWS"
)

var extractionCodes = map[ErrorCode]bool{
	CodeExtractionFailed:      true,
	CodeEmptyContent:          true,
	CodePDFUnreadable:         true,
	CodeVideoIDNotFound:       true,
	CodeTranscriptDisabled:    true,
	CodeTranscriptNotFound:    true,
	CodeTranscriptUnavailable: true,
	CodeTranscriptMalformed:   true,
	CodeWebsiteUnreachable:    true,
	CodeWebsiteNoContent:      true,
}

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is surfaced to API clients.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsExtractionError reports whether err means the source could not be turned into text.
func IsExtractionError(err error) bool {
	return extractionCodes[CodeOf(err)]
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewExtractionError(code ErrorCode, message string, err error) *DomainError {
	if !extractionCodes[code] {
		code = CodeExtractionFailed
	}
	return NewError(code, message, err)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to generate quiz with LLM service", err)
}

func NewNoRowsError() *DomainError {
	return NewError(CodeNoRows, "No valid quiz rows to export", nil)
}
