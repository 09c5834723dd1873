package config

// Model is the unified, format-agnostic representation of everything a host
// exposes to the snapshot pipeline during a single build pass.
type Model struct {
	GlobalOptions   Table
	AdditionalTexts []AdditionalText
	ParseOptions    ParseOptions
	SyntaxTrees     []SyntaxTree
	Compilation     Compilation
}

// TextInfo is the text metadata of a file the host was able to read.
type TextInfo struct {
	CanBeEmbedded     bool
	ChecksumAlgorithm string
	Encoding          *string // nil when the host could not determine it
	Length            int
	Lines             int
}

// AdditionalText is a non-source file handed to the build, together with
// the options scoped to it.
type AdditionalText struct {
	Path    string
	Text    *TextInfo // nil when the text could not be obtained
	Options Table
}

// Feature is a single parse feature flag. Features keep host order.
type Feature struct {
	Key   string
	Value string
}

// ParseOptions holds the parse settings shared by every syntax tree.
type ParseOptions struct {
	DocumentationMode   string
	Kind                string
	Language            string
	PreprocessorSymbols []string
	SpecifiedKinds      []string
	Errors              []string
	Features            []Feature
}

// SyntaxTree is one parsed source unit and the options scoped to it.
type SyntaxTree struct {
	Path                   string
	HasCompilationUnitRoot bool
	Text                   *TextInfo
	Options                Table
}

// Origin tells where a metadata reference came from.
type Origin int

const (
	// OriginExternal is a reference supplied by the build itself.
	OriginExternal Origin = iota
	// OriginDirective is a reference declared by a `#r` directive in source.
	OriginDirective
)

// String returns the short origin tag used in snapshots.
func (o Origin) String() string {
	if o == OriginDirective {
		return "#r"
	}
	return "ex"
}

// Reference is a single metadata reference of the compilation.
type Reference struct {
	Display           string
	Origin            Origin
	Kind              string
	EmbedInteropTypes bool
	Aliases           []string
}

// Compilation holds assembly-level metadata.
type Compilation struct {
	AssemblyName            string
	IsCaseSensitive         bool
	Language                string
	ReferencedAssemblyNames []string
	References              []Reference
}
