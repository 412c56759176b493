package app

import (
	"context"
	"os"

	"github.com/tacogips/igno/internal/debug"
	"github.com/tacogips/igno/internal/gitignore"
	"github.com/tacogips/igno/internal/remote"
)

// TemplateSource abstracts the remote template service so workflows can
// be tested without network access. *remote.Client satisfies it.
type TemplateSource interface {
	// Catalog fetches the full list of available template names.
	Catalog(ctx context.Context) (remote.Catalog, error)

	// Fetch retrieves bodies for validated template names in one request.
	Fetch(ctx context.Context, names []string) ([]gitignore.Template, error)
}

// loadDocument reads and parses the gitignore file at path. A missing
// file yields an empty document; other read errors are surfaced.
func loadDocument(path string) (gitignore.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[app] loadDocument: %s does not exist, starting empty", path)
			return gitignore.Document{}, nil
		}
		return gitignore.Document{}, NewFileReadError(path, err)
	}
	doc := gitignore.Parse(string(data))
	debug.Debug("[app] loadDocument: %s parsed into %d section(s)", path, len(doc.Sections))
	return doc, nil
}

// writeDocument renders the document and overwrites path in a single
// operation. The render happens fully in memory first so an error can
// never leave the target file partially modified.
func writeDocument(path string, doc gitignore.Document) error {
	content := doc.Render()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return NewFileWriteError(path, err)
	}
	return nil
}
