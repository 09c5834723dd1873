package config

import "context"

// Loader is the interface for a format-specific host state loader.
type Loader interface {
	// Load reads host state from the given paths and translates it into the
	// format-agnostic model. Files are merged in the order they are found.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
