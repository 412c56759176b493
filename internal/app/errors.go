package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// CatalogLoadFailed indicates the template catalog could not be loaded.
	CatalogLoadFailed AppErrorType = iota
	// TemplateValidationFailed indicates user-supplied template names were
	// rejected against the catalog.
	TemplateValidationFailed
	// TemplateFetchFailed indicates template bodies could not be fetched.
	TemplateFetchFailed
	// FileReadFailed indicates the gitignore file could not be read.
	FileReadFailed
	// FileWriteFailed indicates the gitignore file could not be written.
	FileWriteFailed
	// MergeFailed indicates the document merge was rejected.
	MergeFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewCatalogLoadError creates a catalog load error.
func NewCatalogLoadError(cause error) *AppError {
	return NewAppError(CatalogLoadFailed, "failed to load template catalog", cause)
}

// NewValidationError creates a template name validation error.
func NewValidationError(cause error) *AppError {
	return NewAppError(TemplateValidationFailed, "unknown template name(s)", cause)
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(cause error) *AppError {
	return NewAppError(TemplateFetchFailed, "failed to fetch templates", cause)
}

// NewFileReadError creates a file read error.
func NewFileReadError(path string, cause error) *AppError {
	return NewAppError(FileReadFailed, fmt.Sprintf("failed to read gitignore file %s", path), cause)
}

// NewFileWriteError creates a file write error.
func NewFileWriteError(path string, cause error) *AppError {
	return NewAppError(FileWriteFailed, fmt.Sprintf("failed to write gitignore file %s", path), cause)
}

// NewMergeError creates a merge rejection error.
func NewMergeError(cause error) *AppError {
	return NewAppError(MergeFailed, "failed to update gitignore document", cause)
}
