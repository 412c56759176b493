package app

import (
	"context"

	"github.com/tacogips/igno/internal/gitignore"
)

// AddOptions holds options for adding templates to a gitignore file.
type AddOptions struct {
	// Names are the user-supplied template names to add.
	Names []string
	// Path is the target gitignore file path.
	Path string
	// Echo renders the result without writing the file.
	Echo bool
	// Source is the remote template service.
	Source TemplateSource
	// ConfirmReplace, when set, is consulted before an existing managed
	// section is replaced. Returning false skips that template.
	ConfirmReplace func(name string) (bool, error)
}

// AddResult holds the outcome of an add workflow.
type AddResult struct {
	// Path is the target gitignore file path.
	Path string
	// Content is the rendered gitignore text.
	Content string
	// Added are canonical names newly appended to the document.
	Added []string
	// Replaced are canonical names whose sections were replaced in place.
	Replaced []string
	// Skipped are canonical names the user declined to replace.
	Skipped []string
	// Written indicates whether the file was written.
	Written bool
}

// Add merges the named templates into the gitignore file at the target
// path. Existing managed sections are replaced in place (subject to
// ConfirmReplace); new templates append at the end. A missing file
// starts from an empty document. All names are validated against the
// catalog before anything is fetched or written.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	doc, err := loadDocument(opts.Path)
	if err != nil {
		return nil, err
	}

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

	result := &AddResult{Path: opts.Path}
	keep := make([]gitignore.Template, 0, len(templates))
	for _, t := range templates {
		if !doc.Contains(t.Name) {
			result.Added = append(result.Added, t.Name)
			keep = append(keep, t)
			continue
		}
		if opts.ConfirmReplace != nil {
			ok, err := opts.ConfirmReplace(t.Name)
			if err != nil {
				return nil, err
			}
			if !ok {
				result.Skipped = append(result.Skipped, t.Name)
				continue
			}
		}
		result.Replaced = append(result.Replaced, t.Name)
		keep = append(keep, t)
	}

	doc = doc.Add(keep)
	result.Content = doc.Render()

	if opts.Echo {
		return result, nil
	}

	if err := writeDocument(opts.Path, doc); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}
