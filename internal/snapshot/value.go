package snapshot

import "strings"

// Markers for the non-text value states.
const (
	MarkerNotFound   = "<- key not found ->"
	MarkerNull       = "<- null ->"
	MarkerEmpty      = "<- empty ->"
	MarkerWhitespace = "<- whitespace ->"
)

// FormatValue renders the result of a table lookup. The checks run in a
// fixed order: absence first, then null, then empty, then whitespace.
func FormatValue(value *string, found bool) string {
	switch {
	case !found:
		return MarkerNotFound
	case value == nil:
		return MarkerNull
	case *value == "":
		return MarkerEmpty
	case strings.TrimSpace(*value) == "":
		return MarkerWhitespace
	default:
		return `"` + *value + `"`
	}
}
