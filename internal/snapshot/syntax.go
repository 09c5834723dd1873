package snapshot

import (
	"context"

	"github.com/specialistvlad/configsnap/internal/config"
)

// FormatSyntaxTrees renders one block per syntax tree, in input order.
func FormatSyntaxTrees(ctx context.Context, trees []config.SyntaxTree) (string, error) {
	var b builder
	for _, tree := range trees {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b.field("Path", tree.Path)
		b.boolField("HasCompilationUnitRoot", tree.HasCompilationUnitRoot)
		b.text(tree.Text)
		b.table("Options", tree.Options)
		b.blank()
	}
	return b.String(), nil
}
