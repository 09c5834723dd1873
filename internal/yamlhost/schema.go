package yamlhost

import (
	"fmt"

	"github.com/specialistvlad/configsnap/internal/config"
	"gopkg.in/yaml.v3"
)

type document struct {
	GlobalOptions   table            `yaml:"global_options"`
	AdditionalTexts []additionalText `yaml:"additional_texts"`
	ParseOptions    *parseOptions    `yaml:"parse_options"`
	SyntaxTrees     []syntaxTree     `yaml:"syntax_trees"`
	Compilation     *compilation     `yaml:"compilation"`
}

type textInfo struct {
	CanBeEmbedded     bool    `yaml:"can_be_embedded"`
	ChecksumAlgorithm string  `yaml:"checksum_algorithm"`
	Encoding          *string `yaml:"encoding"`
	Length            int     `yaml:"length"`
	Lines             int     `yaml:"lines"`
}

type additionalText struct {
	Path    string    `yaml:"path"`
	Text    *textInfo `yaml:"text"`
	Options table     `yaml:"options"`
}

type parseOptions struct {
	DocumentationMode   string   `yaml:"documentation_mode"`
	Kind                string   `yaml:"kind"`
	Language            string   `yaml:"language"`
	PreprocessorSymbols []string `yaml:"preprocessor_symbols"`
	SpecifiedKinds      []string `yaml:"specified_kinds"`
	Errors              []string `yaml:"errors"`
	Features            table    `yaml:"features"`
}

type syntaxTree struct {
	Path                   string    `yaml:"path"`
	HasCompilationUnitRoot bool      `yaml:"has_compilation_unit_root"`
	Text                   *textInfo `yaml:"text"`
	Options                table     `yaml:"options"`
}

type compilation struct {
	AssemblyName            string      `yaml:"assembly_name"`
	IsCaseSensitive         bool        `yaml:"is_case_sensitive"`
	Language                string      `yaml:"language"`
	ReferencedAssemblyNames []string    `yaml:"referenced_assembly_names"`
	References              []reference `yaml:"references"`
}

type reference struct {
	Display           string   `yaml:"display"`
	Origin            string   `yaml:"origin"`
	Kind              string   `yaml:"kind"`
	EmbedInteropTypes bool     `yaml:"embed_interop_types"`
	Aliases           []string `yaml:"aliases"`
}

// table decodes a YAML mapping into an ordered option table.
type table struct {
	config.Table
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: option table must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Tag == "!!null" {
			return fmt.Errorf("line %d: option key must be a string", key.Line)
		}
		switch {
		case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
			t.Set(key.Value, nil)
		case val.Kind == yaml.ScalarNode:
			t.Set(key.Value, config.String(val.Value))
		default:
			return fmt.Errorf("line %d: option %q must be a string or null", val.Line, key.Value)
		}
	}
	return nil
}
