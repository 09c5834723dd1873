package generator

import (
	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/specialistvlad/configsnap/internal/incremental"
	"github.com/specialistvlad/configsnap/internal/snapshot"
)

// Host holds one change-tracked source per configuration kind. A host adapter
// pushes each new build pass into it with Update.
type Host struct {
	GlobalOptions   *incremental.Source[config.Table]
	AdditionalTexts *incremental.Source[[]config.AdditionalText]
	ParseOptions    *incremental.Source[config.ParseOptions]
	SyntaxTrees     *incremental.Source[[]config.SyntaxTree]
	Compilation     *incremental.Source[config.Compilation]
}

// NewHost creates a Host seeded with m. A nil model seeds empty sources.
func NewHost(m *config.Model) *Host {
	if m == nil {
		m = &config.Model{}
	}
	return &Host{
		GlobalOptions:   incremental.NewSource(m.GlobalOptions),
		AdditionalTexts: incremental.NewSource(m.AdditionalTexts),
		ParseOptions:    incremental.NewSource(m.ParseOptions),
		SyntaxTrees:     incremental.NewSource(m.SyntaxTrees),
		Compilation:     incremental.NewSource(m.Compilation),
	}
}

// Update pushes m into every source and returns the hint names of the
// sources whose value actually changed.
func (h *Host) Update(m *config.Model) []string {
	var changed []string
	if h.GlobalOptions.Set(m.GlobalOptions) {
		changed = append(changed, snapshot.HintGlobalOptions)
	}
	if h.AdditionalTexts.Set(m.AdditionalTexts) {
		changed = append(changed, snapshot.HintAdditionalTexts)
	}
	if h.ParseOptions.Set(m.ParseOptions) {
		changed = append(changed, snapshot.HintParseOptions)
	}
	if h.SyntaxTrees.Set(m.SyntaxTrees) {
		changed = append(changed, snapshot.HintSyntaxTrees)
	}
	if h.Compilation.Set(m.Compilation) {
		changed = append(changed, snapshot.HintCompilation)
	}
	return changed
}
