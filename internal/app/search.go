package app

import "context"

// SearchOptions holds options for searching the template catalog.
type SearchOptions struct {
	// Term is the case-insensitive substring to search for. Empty lists
	// the whole catalog.
	Term string
	// Source is the remote template service.
	Source TemplateSource
}

// SearchResult holds the outcome of a search workflow.
type SearchResult struct {
	// Term is the search term that was used.
	Term string
	// Names are the matching template names in catalog order.
	Names []string
	// CatalogSize is the total number of templates in the catalog.
	CatalogSize int
}

// Search matches the term against the remote catalog.
func Search(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	catalog, err := opts.Source.Catalog(ctx)
	if err != nil {
		return nil, NewCatalogLoadError(err)
	}
	return &SearchResult{
		Term:        opts.Term,
		Names:       catalog.Search(opts.Term),
		CatalogSize: catalog.Len(),
	}, nil
}
