package snapshot

import (
	"context"
	"strings"

	"github.com/specialistvlad/configsnap/internal/config"
)

// FormatParseOptions renders the parse settings.
func FormatParseOptions(ctx context.Context, opts config.ParseOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b builder
	b.field("DocumentationMode", opts.DocumentationMode)
	b.field("Kind", opts.Kind)
	b.field("Language", opts.Language)
	b.field("PreprocessorSymbolNames", strings.Join(opts.PreprocessorSymbols, ","))
	b.field("SpecifiedKind", strings.Join(opts.SpecifiedKinds, ","))
	b.list("Errors", opts.Errors)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	features := make([]string, len(opts.Features))
	for i, f := range opts.Features {
		features[i] = f.Key + "=" + f.Value
	}
	b.list("Features", features)
	return b.String(), nil
}
