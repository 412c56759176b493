package gitignore

import "strings"

// Add merges templates into the document and returns the result. A
// template whose name already has a managed section (case-insensitive)
// replaces that section in place, keeping its position; new templates
// append at the end in the order supplied. Duplicate names in the input
// are dropped, keeping the first occurrence. The receiver is unchanged.
func (d Document) Add(templates []Template) Document {
	templates = dedupeTemplates(templates)

	out := make([]Section, len(d.Sections))
	for i, sec := range d.Sections {
		out[i] = cloneSection(sec)
	}

	for _, t := range templates {
		replaced := false
		for i, sec := range out {
			if sec.Kind == ManagedSection && strings.EqualFold(sec.Name, t.Name) {
				out[i] = newManagedSection(t)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, newManagedSection(t))
		}
	}

	return Document{Sections: out}
}

// Remove deletes the managed sections with the given names
// (case-insensitive) and returns the result. Removal is all-or-nothing:
// if any name has no matching section, a NotFoundError for the first such
// name is returned and no sections are removed. Blank separator lines
// left behind at the seams collapse so surviving neighbors stay separated
// by exactly one blank line. The receiver is unchanged.
func (d Document) Remove(names []string) (Document, error) {
	for _, name := range names {
		if !d.Contains(name) {
			return Document{}, &NotFoundError{Name: name}
		}
	}

	remove := make(map[string]bool, len(names))
	for _, name := range names {
		remove[strings.ToLower(name)] = true
	}

	var out []Section
	seam := false
	removedLast := false
	for _, sec := range d.Sections {
		if sec.Kind == ManagedSection && remove[strings.ToLower(sec.Name)] {
			seam = true
			removedLast = true
			continue
		}
		removedLast = false

		if seam && sec.Kind == FreeSection {
			lines := sec.Lines
			if len(out) == 0 {
				// Section removed at document head: drop its trailing
				// separator so the file does not start with a stray blank.
				for len(lines) > 0 && lines[0] == "" {
					lines = lines[1:]
				}
				if len(lines) > 0 {
					out = append(out, Section{Kind: FreeSection, Lines: append([]string(nil), lines...)})
				}
				seam = false
				continue
			}
			if prev := &out[len(out)-1]; prev.Kind == FreeSection {
				// Merge the separators on either side of the removed
				// section, keeping a single blank line between them.
				if len(prev.Lines) > 0 && prev.Lines[len(prev.Lines)-1] == "" &&
					len(lines) > 0 && lines[0] == "" {
					lines = lines[1:]
				}
				prev.Lines = append(prev.Lines, lines...)
				seam = false
				continue
			}
		}
		seam = false
		out = append(out, cloneSection(sec))
	}

	if removedLast && len(out) > 0 {
		// Section removed at document tail: drop the one blank line that
		// separated it from the preceding content.
		if last := &out[len(out)-1]; last.Kind == FreeSection {
			if n := len(last.Lines); n > 0 && last.Lines[n-1] == "" {
				last.Lines = last.Lines[:n-1]
			}
			if len(last.Lines) == 0 {
				out = out[:len(out)-1]
			}
		}
	}

	return Document{Sections: out}, nil
}

// dedupeTemplates drops templates whose name repeats a previous entry,
// case-insensitive, keeping the first occurrence's casing and body.
func dedupeTemplates(templates []Template) []Template {
	seen := make(map[string]bool, len(templates))
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		key := strings.ToLower(t.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
