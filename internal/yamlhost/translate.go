package yamlhost

import (
	"fmt"

	"github.com/specialistvlad/configsnap/internal/config"
)

func translate(doc *document) (*config.Model, error) {
	m := &config.Model{GlobalOptions: doc.GlobalOptions.Table}

	for _, at := range doc.AdditionalTexts {
		m.AdditionalTexts = append(m.AdditionalTexts, config.AdditionalText{
			Path:    at.Path,
			Text:    translateText(at.Text),
			Options: at.Options.Table,
		})
	}
	for _, st := range doc.SyntaxTrees {
		m.SyntaxTrees = append(m.SyntaxTrees, config.SyntaxTree{
			Path:                   st.Path,
			HasCompilationUnitRoot: st.HasCompilationUnitRoot,
			Text:                   translateText(st.Text),
			Options:                st.Options.Table,
		})
	}

	if po := doc.ParseOptions; po != nil {
		m.ParseOptions = config.ParseOptions{
			DocumentationMode:   po.DocumentationMode,
			Kind:                po.Kind,
			Language:            po.Language,
			PreprocessorSymbols: po.PreprocessorSymbols,
			SpecifiedKinds:      po.SpecifiedKinds,
			Errors:              po.Errors,
		}
		for _, e := range po.Features.Entries {
			f := config.Feature{Key: e.Key}
			if e.Value != nil {
				f.Value = *e.Value
			}
			m.ParseOptions.Features = append(m.ParseOptions.Features, f)
		}
	}

	if c := doc.Compilation; c != nil {
		m.Compilation = config.Compilation{
			AssemblyName:            c.AssemblyName,
			IsCaseSensitive:         c.IsCaseSensitive,
			Language:                c.Language,
			ReferencedAssemblyNames: c.ReferencedAssemblyNames,
		}
		for _, r := range c.References {
			ref := config.Reference{
				Display:           r.Display,
				Kind:              r.Kind,
				EmbedInteropTypes: r.EmbedInteropTypes,
				Aliases:           r.Aliases,
			}
			switch r.Origin {
			case "", "external":
				ref.Origin = config.OriginExternal
			case "directive":
				ref.Origin = config.OriginDirective
			default:
				return nil, fmt.Errorf("reference %q: unknown origin %q", r.Display, r.Origin)
			}
			m.Compilation.References = append(m.Compilation.References, ref)
		}
	}
	return m, nil
}

func translateText(t *textInfo) *config.TextInfo {
	if t == nil {
		return nil
	}
	return &config.TextInfo{
		CanBeEmbedded:     t.CanBeEmbedded,
		ChecksumAlgorithm: t.ChecksumAlgorithm,
		Encoding:          t.Encoding,
		Length:            t.Length,
		Lines:             t.Lines,
	}
}
