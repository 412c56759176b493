package config

// Config represents the global igno configuration.
type Config struct {
	// Remote configuration for the template service.
	Remote RemoteConfig `json:"remote"`
	// Output configuration for display.
	Output OutputConfig `json:"output"`
}

// RemoteConfig represents template service settings.
type RemoteConfig struct {
	// BaseURL is the template service API root.
	BaseURL string `json:"base_url"`
	// Timeout is the request timeout in seconds.
	Timeout int `json:"timeout"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}
