package app

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/generator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader

	mu   sync.Mutex
	host *generator.Host
	gen  *generator.Generator
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. Host state is read lazily on the first pass.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = NewLoader()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Generator returns the generator built by the last pass, or nil before the
// first one.
func (a *App) Generator() *generator.Generator {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen
}

// refresh loads the host state and pushes it into the sources. The first call
// builds the host and the generator; later calls only update sources, so
// unchanged inputs keep their memoized snapshots.
func (a *App) refresh(ctx context.Context) (*generator.Generator, error) {
	model, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.host == nil {
		a.host = generator.NewHost(model)
		a.gen = generator.New(a.host, generator.Options{
			Workers:   a.config.Workers,
			CacheSize: a.config.CacheSize,
		})
		a.logger.Debug("Generator created.", "workers", a.config.Workers, "cache_size", a.config.CacheSize)
		return a.gen, nil
	}

	changed := a.host.Update(model)
	a.logger.Debug("Host sources updated.", "changed", changed)
	return a.gen, nil
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
