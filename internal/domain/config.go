package domain

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration with defaults and environment
	// overrides applied.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	API APIConfig // [api] settings
	Log LogConfig // [log] settings
}

// APIConfig holds backend settings from the [api] section.
type APIConfig struct {
	BaseURL string // Backend base URL including the /api prefix
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}
