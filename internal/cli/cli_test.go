package cli

import (
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty uses default",
			input:    "",
			expected: filepath.Join(".", ".gitignore"),
		},
		{
			name:     "explicit path kept",
			input:    "sub/.gitignore",
			expected: "sub/.gitignore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePath(tt.input); got != tt.expected {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	expected := []string{"create", "add", "remove", "list", "search", "show", "version"}

	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Subcommand %q not registered on root", name)
		}
	}
}

func TestUnderlineMatch(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		term     string
		expected string
	}{
		{
			name:     "match underlined",
			in:       "python",
			term:     "py",
			expected: "\033[4mpy\033[0mthon",
		},
		{
			name:     "case-insensitive",
			in:       "Python",
			term:     "py",
			expected: "\033[4mPy\033[0mthon",
		},
		{
			name:     "no match unchanged",
			in:       "go",
			term:     "py",
			expected: "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := underlineMatch(tt.in, tt.term); got != tt.expected {
				t.Errorf("underlineMatch(%q, %q) = %q, want %q", tt.in, tt.term, got, tt.expected)
			}
		})
	}
}
