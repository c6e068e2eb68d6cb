package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every given path (a file or a directory of files) and
	// returns their merged defaults. Later files override earlier ones.
	Load(ctx context.Context, paths ...string) (*Defaults, error)
}
