package app

import "fmt"

// Config holds the command-line options for an App.
type Config struct {
	ConfigPath string // hcl file or directory, optional
	SavePath   string // save file to load and update, optional

	LogFormat string
	LogLevel  string
	// Seed overrides the seed from the settings when non-zero.
	Seed    int64
	Preview bool
	Serve   bool
	Color   bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}
