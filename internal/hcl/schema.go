package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	GlobalOptions   hcl.Expression         `hcl:"global_options,optional"`
	AdditionalTexts []*additionalTextBlock `hcl:"additional_text,block"`
	ParseOptions    []*parseOptionsBlock   `hcl:"parse_options,block"`
	SyntaxTrees     []*syntaxTreeBlock     `hcl:"syntax_tree,block"`
	Compilations    []*compilationBlock    `hcl:"compilation,block"`
}

// textBlock is the `text` block nested in additional_text and syntax_tree.
type textBlock struct {
	CanBeEmbedded     bool    `hcl:"can_be_embedded,optional"`
	ChecksumAlgorithm string  `hcl:"checksum_algorithm,optional"`
	Encoding          *string `hcl:"encoding,optional"`
	Length            int     `hcl:"length,optional"`
	Lines             int     `hcl:"lines,optional"`
}

type additionalTextBlock struct {
	Path    string         `hcl:"path,label"`
	Text    *textBlock     `hcl:"text,block"`
	Options hcl.Expression `hcl:"options,optional"`
}

type parseOptionsBlock struct {
	DocumentationMode   string         `hcl:"documentation_mode,optional"`
	Kind                string         `hcl:"kind,optional"`
	Language            string         `hcl:"language,optional"`
	PreprocessorSymbols []string       `hcl:"preprocessor_symbols,optional"`
	SpecifiedKinds      []string       `hcl:"specified_kinds,optional"`
	Errors              []string       `hcl:"errors,optional"`
	Features            hcl.Expression `hcl:"features,optional"`
}

type syntaxTreeBlock struct {
	Path                   string         `hcl:"path,label"`
	HasCompilationUnitRoot bool           `hcl:"has_compilation_unit_root,optional"`
	Text                   *textBlock     `hcl:"text,block"`
	Options                hcl.Expression `hcl:"options,optional"`
}

type compilationBlock struct {
	AssemblyName            string            `hcl:"assembly_name,optional"`
	IsCaseSensitive         bool              `hcl:"is_case_sensitive,optional"`
	Language                string            `hcl:"language,optional"`
	ReferencedAssemblyNames []string          `hcl:"referenced_assembly_names,optional"`
	References              []*referenceBlock `hcl:"reference,block"`
}

type referenceBlock struct {
	Display           string   `hcl:"display,label"`
	Origin            string   `hcl:"origin,optional"`
	Kind              string   `hcl:"kind,optional"`
	EmbedInteropTypes bool     `hcl:"embed_interop_types,optional"`
	Aliases           []string `hcl:"aliases,optional"`
}
