package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/incremental"
	"github.com/specialistvlad/configsnap/internal/sink"
	"github.com/specialistvlad/configsnap/internal/snapshot"
	"golang.org/x/sync/errgroup"
)

// Options tunes a Generator.
type Options struct {
	// Workers bounds how many stages are evaluated at once (default 5).
	Workers int
	// CacheSize is the number of formatted results each stage remembers.
	CacheSize int
}

// pipeline is the type-erased view of a Stage.
type pipeline interface {
	Hint() string
	Evaluate(ctx context.Context) (Result, error)
	Formatted() int64
}

// Generator owns the gate and the five stages built over a Host.
type Generator struct {
	gate    incremental.Provider[bool]
	stages  []pipeline
	workers int
}

// Report summarizes one build pass.
type Report struct {
	Enabled    bool
	Registered []string
	Duration   time.Duration
}

// New builds the five pipelines over host.
func New(host *Host, opts Options) *Generator {
	if opts.Workers < 1 {
		opts.Workers = len(snapshot.Hints)
	}
	gate := NewGate(host.GlobalOptions)

	return &Generator{
		gate:    gate,
		workers: opts.Workers,
		stages: []pipeline{
			NewStage[config.Table](snapshot.HintGlobalOptions, gate, host.GlobalOptions, snapshot.FormatGlobalOptions, opts.CacheSize),
			NewStage[[]config.AdditionalText](snapshot.HintAdditionalTexts, gate, host.AdditionalTexts, snapshot.FormatAdditionalTexts, opts.CacheSize),
			NewStage[config.ParseOptions](snapshot.HintParseOptions, gate, host.ParseOptions, snapshot.FormatParseOptions, opts.CacheSize),
			NewStage[[]config.SyntaxTree](snapshot.HintSyntaxTrees, gate, host.SyntaxTrees, snapshot.FormatSyntaxTrees, opts.CacheSize),
			NewStage[config.Compilation](snapshot.HintCompilation, gate, host.Compilation, snapshot.FormatCompilation, opts.CacheSize),
		},
	}
}

// Formatted reports how many times each stage's formatter has run, keyed by
// hint name.
func (g *Generator) Formatted() map[string]int64 {
	counts := make(map[string]int64, len(g.stages))
	for _, st := range g.stages {
		counts[st.Hint()] = st.Formatted()
	}
	return counts
}

// Run evaluates every stage and registers the present results with out.
// Registration happens in hint order once all stages have finished, so a
// stage that was cancelled contributes nothing while the others still land.
func (g *Generator) Run(ctx context.Context, out sink.Sink) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	enabled, _ := g.gate.Current()
	report := &Report{Enabled: enabled}
	if !enabled {
		logger.Info("Snapshots disabled, nothing to register.", "property", EnableOptionKey)
		report.Duration = time.Since(start)
		return report, nil
	}

	results := make([]Result, len(g.stages))
	errs := make([]error, len(g.stages))

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i, st := range g.stages {
		eg.Go(func() error {
			results[i], errs[i] = st.Evaluate(ctx)
			return nil
		})
	}
	_ = eg.Wait()

	pass := sink.NewPass(out)
	var failed []error
	for i, st := range g.stages {
		if errs[i] != nil {
			logger.Warn("Stage aborted, skipping registration.", "hint", st.Hint(), "error", errs[i])
			failed = append(failed, fmt.Errorf("stage %s: %w", st.Hint(), errs[i]))
			continue
		}
		if !results[i].Present {
			continue
		}
		if err := pass.AddSource(st.Hint(), results[i].Text); err != nil {
			failed = append(failed, err)
			continue
		}
		report.Registered = append(report.Registered, st.Hint())
	}

	report.Duration = time.Since(start)
	logger.Info("Snapshot pass finished.", "registered", len(report.Registered), "duration", report.Duration)
	return report, errors.Join(failed...)
}
