package gitignore

// Render serializes the document back to gitignore text.
//
// Managed sections render as start marker, body lines verbatim, end
// marker. Free sections render their stored lines unchanged. Any two
// managed sections are separated by exactly one blank line: blank-only
// free sections between managed neighbors collapse to the single
// separator, while free sections with real content are never touched.
// Output uses LF line endings and ends with a single newline; an empty
// document renders as the empty string.
func (d Document) Render() string {
	var lines []string
	prevManaged := false

	for i, sec := range d.Sections {
		switch sec.Kind {
		case FreeSection:
			if prevManaged && blankOnly(sec.Lines) && d.managedFollows(i) {
				// Separator between two managed sections; the managed
				// branch below re-inserts the single blank line.
				continue
			}
			lines = append(lines, sec.Lines...)
			prevManaged = false

		case ManagedSection:
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			lines = append(lines, StartMarker(sec.Name))
			lines = append(lines, sec.Lines...)
			lines = append(lines, EndMarker(sec.Name))
			prevManaged = true
		}
	}

	if len(lines) == 0 {
		return ""
	}

	var b []byte
	for _, line := range lines {
		b = append(b, line...)
		b = append(b, '\n')
	}
	return string(b)
}

// managedFollows reports whether a managed section appears after index i
// with only blank-only free sections in between.
func (d Document) managedFollows(i int) bool {
	for _, sec := range d.Sections[i+1:] {
		if sec.Kind == ManagedSection {
			return true
		}
		if !blankOnly(sec.Lines) {
			return false
		}
	}
	return false
}

func blankOnly(lines []string) bool {
	for _, line := range lines {
		if line != "" {
			return false
		}
	}
	return true
}
