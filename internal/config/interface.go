package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads every file found under paths, merges them over Default()
	// and returns the validated result.
	Load(ctx context.Context, paths ...string) (*Settings, error)
}
