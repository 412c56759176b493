package remote

import (
	"fmt"
	"strings"
)

// ErrorType represents the type of remote service error.
type ErrorType int

const (
	// CatalogUnavailable indicates the template name listing could not be
	// fetched or was malformed.
	CatalogUnavailable ErrorType = iota
	// FetchFailed indicates template bodies could not be fetched.
	FetchFailed
	// TemplateBodyMissing indicates a requested template's body could not
	// be located in the service response.
	TemplateBodyMissing
	// UnknownTemplate indicates a user-supplied name is absent from the
	// catalog.
	UnknownTemplate
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case CatalogUnavailable:
		return "CatalogUnavailable"
	case FetchFailed:
		return "FetchFailed"
	case TemplateBodyMissing:
		return "TemplateBodyMissing"
	case UnknownTemplate:
		return "UnknownTemplate"
	default:
		return "Unknown"
	}
}

// Error represents a remote template service error.
type Error struct {
	// Type is the error type classification.
	Type ErrorType
	// Message is the human-readable error message.
	Message string
	// Names are the template names involved, if any.
	Names []string
	// URL is the request URL that caused the error, if any.
	URL string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("template service error [%s]", e.Type.String())
	if e.URL != "" {
		msg += fmt.Sprintf(" for URL '%s'", e.URL)
	}
	msg += ": " + e.Message
	if len(e.Names) > 0 {
		msg += fmt.Sprintf(": %s", strings.Join(e.Names, ", "))
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewCatalogError creates a catalog unavailable error.
func NewCatalogError(url, message string, cause error) *Error {
	return &Error{Type: CatalogUnavailable, Message: message, URL: url, Cause: cause}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(url, message string, cause error) *Error {
	return &Error{Type: FetchFailed, Message: message, URL: url, Cause: cause}
}

// NewBodyMissingError creates a template body missing error.
func NewBodyMissingError(name string) *Error {
	return &Error{Type: TemplateBodyMissing, Message: "template body not found in service response", Names: []string{name}}
}

// NewUnknownTemplateError creates an unknown template error listing every
// offending name.
func NewUnknownTemplateError(names []string) *Error {
	return &Error{Type: UnknownTemplate, Message: "no such template in catalog", Names: names}
}

// IsType reports whether err is a remote Error of the given type.
func IsType(err error, typ ErrorType) bool {
	rerr, ok := err.(*Error)
	return ok && rerr.Type == typ
}
