package gitignore

import (
	"strings"

	"github.com/tacogips/igno/internal/debug"
)

// parseState tracks the line scanner position relative to marker pairs.
type parseState int

const (
	scanningFree parseState = iota
	scanningManaged
)

// Parse scans gitignore text into a Document. Lines bounded by a start
// marker and its matching end marker become a managed section tagged with
// the embedded template name; everything else becomes free sections, with
// consecutive free lines coalesced.
//
// Parse never fails. A start marker with no matching end marker degrades
// at end of input to free text, so hand-edited or corrupted files always
// parse into something renderable without data loss. Marker-shaped lines
// inside a managed body (for example section headers the remote service
// embeds in template content) stay part of that body; only the matching
// end marker closes a section.
func Parse(text string) Document {
	if text == "" {
		return Document{}
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	var doc Document
	var free []string
	var managedName string
	var managedStart string
	var body []string
	state := scanningFree

	flushFree := func() {
		if len(free) > 0 {
			doc.Sections = append(doc.Sections, Section{Kind: FreeSection, Lines: free})
			free = nil
		}
	}

	for _, line := range lines {
		switch state {
		case scanningFree:
			if name, ok := matchStartMarker(line); ok {
				state = scanningManaged
				managedName = name
				managedStart = line
				body = nil
				continue
			}
			free = append(free, line)

		case scanningManaged:
			if name, ok := matchEndMarker(line); ok && strings.EqualFold(name, managedName) {
				flushFree()
				doc.Sections = append(doc.Sections, Section{
					Kind:  ManagedSection,
					Name:  managedName,
					Lines: body,
				})
				state = scanningFree
				continue
			}
			body = append(body, line)
		}
	}

	if state == scanningManaged {
		// Unterminated section: recover the accumulated lines as free text.
		debug.Debug("[gitignore] Parse: unmatched start marker for %q, folding %d line(s) into free text",
			managedName, len(body)+1)
		free = append(free, managedStart)
		free = append(free, body...)
	}
	flushFree()

	return doc
}
