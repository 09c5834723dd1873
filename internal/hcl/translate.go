// This file contains the logic for translating the HCL schema structs into
// the format-agnostic model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateRoot converts one decoded file into the agnostic model.
func translateRoot(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}

	options, diags := translateTable(root.GlobalOptions)
	if diags.HasErrors() {
		return nil, diags
	}
	m.GlobalOptions = options

	for _, b := range root.AdditionalTexts {
		opts, diags := translateTable(b.Options)
		if diags.HasErrors() {
			return nil, diags
		}
		m.AdditionalTexts = append(m.AdditionalTexts, config.AdditionalText{
			Path:    b.Path,
			Text:    translateText(b.Text),
			Options: opts,
		})
	}

	for _, b := range root.SyntaxTrees {
		opts, diags := translateTable(b.Options)
		if diags.HasErrors() {
			return nil, diags
		}
		m.SyntaxTrees = append(m.SyntaxTrees, config.SyntaxTree{
			Path:                   b.Path,
			HasCompilationUnitRoot: b.HasCompilationUnitRoot,
			Text:                   translateText(b.Text),
			Options:                opts,
		})
	}

	if len(root.ParseOptions) > 1 {
		return nil, fmt.Errorf("parse_options %w", config.ErrDuplicateSingleton)
	}
	for _, b := range root.ParseOptions {
		po, err := translateParseOptions(b)
		if err != nil {
			return nil, err
		}
		m.ParseOptions = po
	}

	if len(root.Compilations) > 1 {
		return nil, fmt.Errorf("compilation %w", config.ErrDuplicateSingleton)
	}
	for _, b := range root.Compilations {
		c, err := translateCompilation(b)
		if err != nil {
			return nil, err
		}
		m.Compilation = c
	}
	return m, nil
}

func translateText(b *textBlock) *config.TextInfo {
	if b == nil {
		return nil
	}
	return &config.TextInfo{
		CanBeEmbedded:     b.CanBeEmbedded,
		ChecksumAlgorithm: b.ChecksumAlgorithm,
		Encoding:          b.Encoding,
		Length:            b.Length,
		Lines:             b.Lines,
	}
}

func translateParseOptions(b *parseOptionsBlock) (config.ParseOptions, error) {
	po := config.ParseOptions{
		DocumentationMode:   b.DocumentationMode,
		Kind:                b.Kind,
		Language:            b.Language,
		PreprocessorSymbols: b.PreprocessorSymbols,
		SpecifiedKinds:      b.SpecifiedKinds,
		Errors:              b.Errors,
	}
	features, diags := translateTable(b.Features)
	if diags.HasErrors() {
		return po, diags
	}
	for _, e := range features.Entries {
		f := config.Feature{Key: e.Key}
		if e.Value != nil {
			f.Value = *e.Value
		}
		po.Features = append(po.Features, f)
	}
	return po, nil
}

func translateCompilation(b *compilationBlock) (config.Compilation, error) {
	c := config.Compilation{
		AssemblyName:            b.AssemblyName,
		IsCaseSensitive:         b.IsCaseSensitive,
		Language:                b.Language,
		ReferencedAssemblyNames: b.ReferencedAssemblyNames,
	}
	for _, r := range b.References {
		origin, err := translateOrigin(r.Origin)
		if err != nil {
			return c, fmt.Errorf("reference %q: %w", r.Display, err)
		}
		c.References = append(c.References, config.Reference{
			Display:           r.Display,
			Origin:            origin,
			Kind:              r.Kind,
			EmbedInteropTypes: r.EmbedInteropTypes,
			Aliases:           r.Aliases,
		})
	}
	return c, nil
}

// translateOrigin maps the origin attribute; empty means external.
func translateOrigin(s string) (config.Origin, error) {
	switch s {
	case "", "external":
		return config.OriginExternal, nil
	case "directive":
		return config.OriginDirective, nil
	default:
		return config.OriginExternal, fmt.Errorf("unknown origin %q, expected \"external\" or \"directive\"", s)
	}
}

// translateTable reads an object expression into an ordered table. A missing
// or null expression yields an empty table.
func translateTable(expr hcl.Expression) (config.Table, hcl.Diagnostics) {
	var t config.Table
	if expr == nil {
		return t, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return t, diags
	}
	if val.IsNull() {
		return t, nil
	}

	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return t, diags
	}
	for _, pair := range pairs {
		key, diags := evalString(pair.Key)
		if diags.HasErrors() {
			return t, diags
		}
		if key == nil {
			return t, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid option key",
				Detail:   "Option keys must not be null.",
				Subject:  pair.Key.Range().Ptr(),
			}}
		}
		value, diags := evalString(pair.Value)
		if diags.HasErrors() {
			return t, diags
		}
		t.Set(*key, value)
	}
	return t, nil
}

// evalString evaluates expr to a string, keeping null as nil.
func evalString(expr hcl.Expression) (*string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid option value",
			Detail:   fmt.Sprintf("Option values must be strings or null, got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	s := str.AsString()
	return &s, nil
}
