package gitignore

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a removal targeted a template name with no
// managed section in the document.
type NotFoundError struct {
	// Name is the template name that was not found.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no section for template %q in gitignore file", e.Name)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
