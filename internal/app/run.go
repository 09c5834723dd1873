package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/configsnap/internal/sink"
	"github.com/specialistvlad/configsnap/internal/watch"
)

// Generate runs one pass and mirrors the registered snapshots into the
// output directory.
func (a *App) Generate(ctx context.Context) (*sink.FlushReport, error) {
	ctx = a.context(ctx)
	a.logger.Debug("App.Generate method started.")

	gen, err := a.refresh(ctx)
	if err != nil {
		return nil, err
	}

	out := sink.NewDir(a.config.OutDir)
	if _, err := gen.Run(ctx, out); err != nil {
		return nil, fmt.Errorf("snapshot pass failed: %w", err)
	}
	report, err := out.Flush(ctx)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Snapshots generated.",
		"dir", a.config.OutDir,
		"written", len(report.Written),
		"unchanged", len(report.Unchanged),
		"removed", len(report.Removed),
	)
	return report, nil
}

// Check runs one pass in memory and compares it with the output directory.
// It returns a *sink.DriftError when the directory is out of date.
func (a *App) Check(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Check method started.")

	gen, err := a.refresh(ctx)
	if err != nil {
		return err
	}

	got := sink.NewMemory()
	if _, err := gen.Run(ctx, got); err != nil {
		return fmt.Errorf("snapshot pass failed: %w", err)
	}
	if err := sink.Check(a.config.OutDir, got); err != nil {
		return err
	}

	a.logger.Info("Snapshots are up to date.", "dir", a.config.OutDir)
	return nil
}

// Watch generates once, then regenerates whenever a host file or the
// properties file changes. It blocks until ctx is cancelled. Failed passes
// are logged and the watch goes on.
func (a *App) Watch(ctx context.Context) error {
	ctx = a.context(ctx)

	if _, err := a.Generate(ctx); err != nil {
		a.logger.Error("Initial generation failed.", "error", err)
	}

	paths := append([]string{}, a.config.HostPaths...)
	if a.config.PropertiesPath != "" {
		paths = append(paths, a.config.PropertiesPath)
	}

	w, err := watch.New(paths, watch.Options{
		Debounce:   a.config.Debounce,
		Extensions: a.loaderExtensions(),
	})
	if err != nil {
		return err
	}

	a.logger.Info("Watching host files for changes.", "paths", paths)
	return w.Run(ctx, func(ctx context.Context) {
		if _, err := a.Generate(ctx); err != nil {
			a.logger.Error("Regeneration failed.", "error", err)
		}
	})
}

func (a *App) loaderExtensions() []string {
	if l, ok := a.loader.(interface{ Extensions() []string }); ok {
		return l.Extensions()
	}
	return nil
}
