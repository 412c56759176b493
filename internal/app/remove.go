package app

import (
	"context"
)

// RemoveOptions holds options for removing templates from a gitignore file.
type RemoveOptions struct {
	// Names are the template names to remove.
	Names []string
	// Path is the target gitignore file path.
	Path string
	// Echo renders the result without writing the file.
	Echo bool
}

// RemoveResult holds the outcome of a remove workflow.
type RemoveResult struct {
	// Path is the target gitignore file path.
	Path string
	// Content is the rendered gitignore text.
	Content string
	// Removed are the section names that were removed, in document order.
	Removed []string
	// Written indicates whether the file was written.
	Written bool
}

// Remove deletes the managed sections for the given names from the
// gitignore file. Removal is all-or-nothing: if any name has no matching
// section the file is left untouched. Remove consults only the local
// file, never the remote service.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	doc, err := loadDocument(opts.Path)
	if err != nil {
		return nil, err
	}

	before := doc.TemplateNames()

	doc, err = doc.Remove(opts.Names)
	if err != nil {
		return nil, NewMergeError(err)
	}

	result := &RemoveResult{
		Path:    opts.Path,
		Content: doc.Render(),
		Removed: diffNames(before, doc.TemplateNames()),
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

// diffNames returns the names present in before but not in after,
// preserving before's order.
func diffNames(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, name := range after {
		kept[name] = true
	}
	var removed []string
	for _, name := range before {
		if !kept[name] {
			removed = append(removed, name)
		}
	}
	return removed
}
