package remote

import (
	"strings"

	"github.com/tacogips/igno/internal/gitignore"
)

// splitResponse parses a combined template response into per-template
// bodies, in the order names were requested.
//
// The service wraps the payload in its own delimiters, distinct from the
// markers this tool writes: leading "# Created by"/"# Edit at" comment
// lines, a "### <Name> ###" header before each template body, and a
// "# End of" footer. A header only acts as a boundary when it names one
// of the requested templates; any other header-shaped line (the service
// embeds sub-headers such as "### Python Patch ###" inside bodies) stays
// part of the current body. Bodies are trimmed of surrounding blank
// lines. A requested name with no located body yields TemplateBodyMissing.
func splitResponse(body string, names []string) ([]gitignore.Template, error) {
	requested := make(map[string]string, len(names))
	for _, name := range names {
		requested[strings.ToLower(name)] = name
	}

	bodies := make(map[string][]string, len(names))
	current := ""

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if name, ok := matchServiceHeader(line); ok {
			if canonical, want := requested[strings.ToLower(name)]; want {
				current = strings.ToLower(canonical)
				bodies[current] = nil
				continue
			}
		}
		if strings.HasPrefix(line, "# End of ") {
			current = ""
			continue
		}
		if current == "" {
			// Service preamble or trailing noise outside any template.
			continue
		}
		bodies[current] = append(bodies[current], line)
	}

	templates := make([]gitignore.Template, 0, len(names))
	for _, name := range names {
		lines, ok := bodies[strings.ToLower(name)]
		if !ok {
			return nil, NewBodyMissingError(name)
		}
		templates = append(templates, gitignore.Template{
			Name: name,
			Body: strings.Join(trimBlankEdges(lines), "\n"),
		})
	}
	return templates, nil
}

// matchServiceHeader reports the template name in a service header line
// of the form "### <Name> ###".
func matchServiceHeader(line string) (string, bool) {
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
	return name, true
}

// trimBlankEdges drops leading and trailing blank lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
