package app

import "context"

// ListOptions holds options for listing templates in a gitignore file.
type ListOptions struct {
	// Path is the target gitignore file path.
	Path string
}

// ListResult holds the outcome of a list workflow.
type ListResult struct {
	// Path is the target gitignore file path.
	Path string
	// TemplateNames are the managed section names in document order.
	TemplateNames []string
}

// List returns the template names present in the gitignore file, in
// document order, without mutating anything.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	doc, err := loadDocument(opts.Path)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Path:          opts.Path,
		TemplateNames: doc.TemplateNames(),
	}, nil
}
