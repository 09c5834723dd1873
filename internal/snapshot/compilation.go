package snapshot

import (
	"context"

	"github.com/specialistvlad/configsnap/internal/config"
)

// SuffixEmbedInteropTypes marks references that embed interop types.
const SuffixEmbedInteropTypes = "(EmbedInteropTypes)"

// FormatCompilation renders assembly metadata and the reference list.
func FormatCompilation(ctx context.Context, c config.Compilation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b builder
	b.field("AssemblyName", c.AssemblyName)
	b.boolField("IsCaseSensitive", c.IsCaseSensitive)
	b.field("Language", c.Language)
	b.list("ReferencedAssemblyNames", c.ReferencedAssemblyNames)

	b.list("References", nil)
	for _, ref := range c.References {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b.item(formatReference(ref))
		for _, alias := range ref.Aliases {
			b.item("  alias: " + alias)
		}
	}
	return b.String(), nil
}

// formatReference renders the head line of one reference.
func formatReference(ref config.Reference) string {
	line := ref.Origin.String() + " " + ref.Display + " [" + ref.Kind + "]"
	if ref.EmbedInteropTypes {
		line += " " + SuffixEmbedInteropTypes
	}
	return line
}
