package app

import (
	"context"

	"github.com/tacogips/igno/internal/gitignore"
)

// CreateOptions holds options for creating a gitignore file.
type CreateOptions struct {
	// Names are the user-supplied template names to include.
	Names []string
	// Path is the target gitignore file path.
	Path string
	// Echo renders the result without writing the file.
	Echo bool
	// Source is the remote template service.
	Source TemplateSource
}

// CreateResult holds the outcome of a create workflow.
type CreateResult struct {
	// Path is the target gitignore file path.
	Path string
	// Content is the rendered gitignore text.
	Content string
	// TemplateNames are the canonical names included, in order.
	TemplateNames []string
	// Written indicates whether the file was written.
	Written bool
}

// Create builds a fresh gitignore document from the named templates and
// writes it to the target path. Names are validated against the catalog
// before anything is fetched or written; any unknown name aborts the
// whole operation.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	catalog, err := opts.Source.Catalog(ctx)
	if err != nil {
		return nil, NewCatalogLoadError(err)
	}

	names, err := catalog.Validate(opts.Names)
	if err != nil {
		return nil, NewValidationError(err)
	}

	templates, err := opts.Source.Fetch(ctx, names)
	if err != nil {
		return nil, NewTemplateFetchError(err)
	}

	doc := gitignore.Document{}.Add(templates)
	result := &CreateResult{
		Path:          opts.Path,
		Content:       doc.Render(),
		TemplateNames: doc.TemplateNames(),
	}

	if opts.Echo {
		return result, nil
	}

	if err := writeDocument(opts.Path, doc); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}
