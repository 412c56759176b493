package remote

import "strings"

// Catalog is the set of template names known to the remote service,
// fetched once per invocation and threaded through calls as an immutable
// value. Lookups are case-insensitive; Names preserves service order.
type Catalog struct {
	names []string
	index map[string]string
}

// NewCatalog builds a catalog from template names in service order.
// Duplicate names (case-insensitive) keep their first occurrence.
func NewCatalog(names []string) Catalog {
	c := Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]string, len(names)),
	}
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := c.index[key]; ok {
			continue
		}
		c.index[key] = name
		c.names = append(c.names, name)
	}
	return c
}

// Names returns all template names in catalog order.
func (c Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of templates in the catalog.
func (c Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether the catalog knows the given template name.
func (c Catalog) Contains(name string) bool {
	_, ok := c.index[strings.ToLower(name)]
	return ok
}

// Canonical returns the catalog's canonical casing for a template name.
func (c Catalog) Canonical(name string) (string, bool) {
	canonical, ok := c.index[strings.ToLower(name)]
	return canonical, ok
}

// Validate checks the supplied names against the catalog. On success it
// returns the names normalized to canonical casing, in input order with
// duplicates removed. If any name is unknown, an UnknownTemplate error
// listing every offending name is returned instead.
func (c Catalog) Validate(names []string) ([]string, error) {
	var unknown []string
	seen := make(map[string]bool, len(names))
	valid := make([]string, 0, len(names))

	for _, name := range names {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		canonical, ok := c.index[key]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		valid = append(valid, canonical)
	}

	if len(unknown) > 0 {
		return nil, NewUnknownTemplateError(unknown)
	}
	return valid, nil
}

// Search returns template names containing term as a case-insensitive
// substring, in catalog order. An empty term returns the full catalog.
func (c Catalog) Search(term string) []string {
	if term == "" {
		return c.Names()
	}
	term = strings.ToLower(term)
	var matches []string
	for _, name := range c.names {
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, name)
		}
	}
	return matches
}
