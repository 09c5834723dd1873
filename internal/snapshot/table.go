package snapshot

import (
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/configsnap/internal/config"
)

// NewLine terminates every line of every snapshot.
const NewLine = "\n"

// FormatTable renders every key of t in iteration order, one line per key,
// joined by sep. The key column is as wide as the longest bracketed key plus
// two, computed per call. An empty table renders as the empty string.
func FormatTable(t config.Table, prefix, sep string) string {
	if t.Len() == 0 {
		return ""
	}

	width := 0
	for _, e := range t.Entries {
		if n := utf8.RuneCountInString(e.Key) + 2; n > width {
			width = n
		}
	}
	width += 2

	lines := make([]string, 0, t.Len())
	for _, e := range t.Entries {
		bracketed := "[" + e.Key + "]"
		pad := width - utf8.RuneCountInString(bracketed)

		var sb strings.Builder
		sb.WriteString(prefix)
		sb.WriteString(bracketed)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString("= ")
		sb.WriteString(FormatValue(e.Value, true))
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, sep)
}
