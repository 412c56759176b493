package app

import "context"

// ShowOptions holds options for showing a single template body.
type ShowOptions struct {
	// Name is the user-supplied template name.
	Name string
	// Source is the remote template service.
	Source TemplateSource
}

// ShowResult holds the outcome of a show workflow.
type ShowResult struct {
	// Name is the canonical template name.
	Name string
	// Body is the raw template body as fetched.
	Body string
}

// Show fetches and returns one template's body.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	catalog, err := opts.Source.Catalog(ctx)
	if err != nil {
		return nil, NewCatalogLoadError(err)
	}

	names, err := catalog.Validate([]string{opts.Name})
	if err != nil {
		return nil, NewValidationError(err)
	}

	templates, err := opts.Source.Fetch(ctx, names)
	if err != nil {
		return nil, NewTemplateFetchError(err)
	}

	return &ShowResult{
		Name: templates[0].Name,
		Body: templates[0].Body,
	}, nil
}
