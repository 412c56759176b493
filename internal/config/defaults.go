package config

import (
	"os"
	"path/filepath"
)

// DefaultBaseURL is the gitignore.io template API.
const DefaultBaseURL = "https://www.toptal.com/developers/gitignore/api"

// DefaultTimeout is the default request timeout in seconds.
const DefaultTimeout = 30

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultPath returns the default configuration file path
// (~/.config/igno/config.json, or the platform equivalent). Returns an
// empty string if the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "igno", "config.json")
}
