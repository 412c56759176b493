package cli

import (
	"path/filepath"
	"time"

	"github.com/tacogips/igno/internal/remote"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagPath          = "path"
	FlagShowGitignore = "show-gitignore"
	FlagForce         = "force"
	FlagConfig        = "config"
	FlagNoColor       = "no-color"
	FlagQuiet         = "quiet"
	FlagDebug         = "debug"

	// Flag descriptions
	DescPath          = "Target a gitignore file at this path"
	DescShowGitignore = "Print the resulting gitignore instead of writing the file"
	DescForce         = "Skip confirmation prompts"
	DescConfig        = "Path to config file"
	DescNoColor       = "Disable colored output"
	DescQuiet         = "Suppress non-error output"
	DescDebug         = "Enable debug logging"
)

// defaultGitignorePath returns the default target: .gitignore in the
// current directory.
func defaultGitignorePath() string {
	return filepath.Join(".", ".gitignore")
}

// resolvePath returns the flag value, or the default target when empty.
func resolvePath(path string) string {
	if path == "" {
		return defaultGitignorePath()
	}
	return path
}

// newSource builds the remote client from the loaded configuration.
func newSource() *remote.Client {
	baseURL := ""
	timeout := time.Duration(0)
	if cfg != nil {
		baseURL = cfg.Remote.BaseURL
		timeout = time.Duration(cfg.Remote.Timeout) * time.Second
	}
	return remote.NewClient(baseURL, timeout)
}
