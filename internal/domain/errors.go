package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds the system distinguishes. Handlers
// map these to HTTP status codes; callers test them with the Is* helpers.
var (
	// ErrInvalidInput marks input rejected before any provider call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a missing resource.
	ErrNotFound = errors.New("resource not found")
	// ErrTranscription marks a failed speech-to-text call.
	ErrTranscription = errors.New("transcription failed")
	// ErrTranslation marks a failed translation call.
	ErrTranslation = errors.New("translation failed")
	// ErrSummarization marks a failed summary generation call.
	ErrSummarization = errors.New("summarization failed")
	// ErrStorage marks a persistence failure (database or audio blob).
	ErrStorage = errors.New("storage failure")
	// ErrInternal marks any other internal error.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code, a user-safe message, and the wrapped
// cause. Error() is for logs; UserMessage() is what handlers may expose.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal details.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates a validation error with the given message.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewNotFoundError creates a missing-resource error.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewTranscriptionError wraps a speech-to-text provider failure.
func NewTranscriptionError(err error) error {
	return &DomainError{
		Code:    "TRANSCRIPTION_FAILED",
		Message: "could not transcribe the audio clip",
		Err:     fmt.Errorf("%w: %v", ErrTranscription, err),
	}
}

// NewTranslationError wraps a translation provider failure.
func NewTranslationError(err error) error {
	return &DomainError{
		Code:    "TRANSLATION_FAILED",
		Message: "could not translate the message",
		Err:     fmt.Errorf("%w: %v", ErrTranslation, err),
	}
}

// NewSummarizationError wraps a summary provider failure.
func NewSummarizationError(err error) error {
	return &DomainError{
		Code:    "SUMMARIZATION_FAILED",
		Message: "could not generate the consultation summary",
		Err:     fmt.Errorf("%w: %v", ErrSummarization, err),
	}
}

// NewStorageError wraps a database or blob persistence failure.
func NewStorageError(message string, err error) error {
	return &DomainError{
		Code:    "STORAGE_FAILED",
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrStorage, err),
	}
}

// NewInternalError wraps any other failure without exposing details.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsInvalidInput reports whether err is a validation error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err is a missing-resource error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTranscription reports whether err is a transcription failure.
func IsTranscription(err error) bool {
	return errors.Is(err, ErrTranscription)
}

// IsTranslation reports whether err is a translation failure.
func IsTranslation(err error) bool {
	return errors.Is(err, ErrTranslation)
}

// IsSummarization reports whether err is a summarization failure.
func IsSummarization(err error) bool {
	return errors.Is(err, ErrSummarization)
}

// IsStorage reports whether err is a persistence failure.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
