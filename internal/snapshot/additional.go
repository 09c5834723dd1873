package snapshot

import (
	"context"

	"github.com/specialistvlad/configsnap/internal/config"
)

// FormatAdditionalTexts renders one block per additional text, in input
// order. Each block ends with a blank line.
func FormatAdditionalTexts(ctx context.Context, texts []config.AdditionalText) (string, error) {
	var b builder
	for _, at := range texts {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b.field("Path", at.Path)
		b.text(at.Text)
		b.table("Options", at.Options)
		b.blank()
	}
	return b.String(), nil
}
