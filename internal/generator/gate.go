package generator

import (
	"strings"

	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/specialistvlad/configsnap/internal/incremental"
)

// EnableProperty is the build property that turns snapshots on.
const EnableProperty = "PodNetEnableAnalyzerConfigSnapshot"

// EnableOptionKey is EnableProperty as it appears in the global options.
const EnableOptionKey = "build_property." + EnableProperty

// Gate reports whether the global options enable snapshots. Only the
// literal "true", compared case-insensitively, enables them.
func Gate(options config.Table) bool {
	v, ok := options.Lookup(EnableOptionKey)
	return ok && v != nil && strings.EqualFold(*v, "true")
}

// NewGate derives the feature gate from the global options source.
func NewGate(options incremental.Provider[config.Table]) incremental.Provider[bool] {
	return incremental.Select(options, Gate)
}
