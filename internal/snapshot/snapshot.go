package snapshot

// Hint names under which each snapshot kind is registered.
const (
	HintGlobalOptions   = "_AnalyzerConfigOptions.GlobalOptions"
	HintAdditionalTexts = "_AdditionalTexts"
	HintParseOptions    = "_ParseOptions"
	HintSyntaxTrees     = "_SyntaxTrees"
	HintCompilation     = "_Compilation"
)

// Hints lists every hint name in registration order.
var Hints = []string{
	HintGlobalOptions,
	HintAdditionalTexts,
	HintParseOptions,
	HintSyntaxTrees,
	HintCompilation,
}

// Snapshot is the rendered text of one configuration source kind.
type Snapshot struct {
	Hint string
	Text string
}
