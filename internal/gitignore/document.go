package gitignore

import "strings"

// Template represents a named gitignore template fetched from the remote
// service. Templates are immutable once fetched.
type Template struct {
	// Name is the template identifier in catalog-canonical casing.
	Name string
	// Body is the raw template content without the surrounding markers.
	Body string
}

// SectionKind distinguishes managed template blocks from user-authored text.
type SectionKind int

const (
	// FreeSection is user-authored text outside any marker pair. It is
	// preserved verbatim, byte for byte.
	FreeSection SectionKind = iota
	// ManagedSection is a template-derived block bounded by a start and
	// end marker that embed the template name.
	ManagedSection
)

// Section is a contiguous span of a gitignore document.
type Section struct {
	// Kind is the section variant.
	Kind SectionKind
	// Name is the originating template name. Empty for free sections.
	Name string
	// Lines holds the section content. For managed sections these are the
	// lines between the markers (markers excluded); for free sections the
	// raw lines as they appeared in the file.
	Lines []string
}

// Document is an ordered sequence of sections representing one .gitignore
// file. The zero value is an empty document. Documents are values: merge
// operations return a new Document and never mutate the receiver.
type Document struct {
	// Sections are the document sections in file order.
	Sections []Section
}

// StartMarker returns the start marker line for a template name.
func StartMarker(name string) string {
	return "### " + name + " ###"
}

// EndMarker returns the end marker line for a template name.
func EndMarker(name string) string {
	return "### END " + name + " ###"
}

// matchStartMarker reports the template name embedded in a start marker
// line. End markers and lines with padded or empty names do not match.
func matchStartMarker(line string) (string, bool) {
	if len(line) <= len("### ")+len(" ###") {
		return "", false
	}
	if !strings.HasPrefix(line, "### ") || !strings.HasSuffix(line, " ###") {
		return "", false
	}
	name := line[len("### ") : len(line)-len(" ###")]
	if name == "" || name != strings.TrimSpace(name) {
		return "", false
	}
	if name == "END" || strings.HasPrefix(name, "END ") {
		return "", false
	}
	return name, true
}

// matchEndMarker reports the template name embedded in an end marker line.
func matchEndMarker(line string) (string, bool) {
	if len(line) <= len("### END ")+len(" ###") {
		return "", false
	}
	if !strings.HasPrefix(line, "### END ") || !strings.HasSuffix(line, " ###") {
		return "", false
	}
	name := line[len("### END ") : len(line)-len(" ###")]
	if name == "" || name != strings.TrimSpace(name) {
		return "", false
	}
	return name, true
}

// TemplateNames returns the managed section names in document order.
func (d Document) TemplateNames() []string {
	var names []string
	for _, sec := range d.Sections {
		if sec.Kind == ManagedSection {
			names = append(names, sec.Name)
		}
	}
	return names
}

// Contains reports whether the document has a managed section with the
// given template name. Matching is case-insensitive.
func (d Document) Contains(name string) bool {
	for _, sec := range d.Sections {
		if sec.Kind == ManagedSection && strings.EqualFold(sec.Name, name) {
			return true
		}
	}
	return false
}

// newManagedSection builds a managed section from a fetched template.
func newManagedSection(t Template) Section {
	return Section{
		Kind:  ManagedSection,
		Name:  t.Name,
		Lines: splitBody(t.Body),
	}
}

// splitBody splits a template body into lines, dropping a single trailing
// newline so the body round-trips through line-based rendering.
func splitBody(body string) []string {
	if body == "" {
		return nil
	}
	body = strings.TrimSuffix(body, "\n")
	return strings.Split(body, "\n")
}

// cloneSection returns a section whose line slice does not alias the
// original.
func cloneSection(sec Section) Section {
	out := Section{Kind: sec.Kind, Name: sec.Name}
	if sec.Lines != nil {
		out.Lines = append([]string(nil), sec.Lines...)
	}
	return out
}
