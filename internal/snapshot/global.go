package snapshot

import (
	"context"

	"github.com/specialistvlad/configsnap/internal/config"
)

// FormatGlobalOptions renders the global option table.
func FormatGlobalOptions(ctx context.Context, options config.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	block := FormatTable(options, linePrefix, NewLine)
	if block == "" {
		return "", nil
	}
	return block + NewLine, nil
}
