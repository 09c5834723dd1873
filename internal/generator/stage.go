package generator

import (
	"context"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/incremental"
)

// Result is the outcome of one stage evaluation. Present is false when the
// gate is off, in which case Text is empty.
type Result struct {
	Text    string
	Present bool
}

// FormatFunc turns one source value into snapshot text.
type FormatFunc[T any] func(ctx context.Context, v T) (string, error)

// Stage is one gated, memoized pipeline.
type Stage[T any] struct {
	hint   string
	gate   incremental.Provider[bool]
	source incremental.Provider[T]
	format FormatFunc[T]

	mu    sync.Mutex
	cache *lru.Cache[incremental.Version, string]

	formatted atomic.Int64
}

// NewStage creates a stage remembering up to cacheSize formatted results,
// keyed by source version. The gate only decides whether a result is
// present, never what it contains. cacheSize below 1 is treated as 1.
func NewStage[T any](hint string, gate incremental.Provider[bool], source incremental.Provider[T], format FormatFunc[T], cacheSize int) *Stage[T] {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[incremental.Version, string](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size, which is excluded above.
		panic(err)
	}
	return &Stage[T]{
		hint:   hint,
		gate:   gate,
		source: source,
		format: format,
		cache:  cache,
	}
}

// Hint returns the name the stage's result is registered under.
func (s *Stage[T]) Hint() string {
	return s.hint
}

// Formatted reports how many times the formatter has run to completion.
func (s *Stage[T]) Formatted() int64 {
	return s.formatted.Load()
}

// Evaluate returns the stage result for the current inputs. With the gate off
// the source is not even read. An error is only returned when formatting was
// cancelled; nothing is cached in that case.
func (s *Stage[T]) Evaluate(ctx context.Context) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("hint", s.hint)

	enabled, _ := s.gate.Current()
	if !enabled {
		logger.Debug("Stage gated off.")
		return Result{}, nil
	}

	value, sourceVersion := s.source.Current()

	s.mu.Lock()
	defer s.mu.Unlock()

	if text, ok := s.cache.Get(sourceVersion); ok {
		logger.Debug("Stage cache hit.", "source_version", sourceVersion)
		return Result{Text: text, Present: true}, nil
	}

	logger.Debug("Stage cache miss, formatting.", "source_version", sourceVersion)
	text, err := s.format(ctx, value)
	if err != nil {
		return Result{}, err
	}
	s.formatted.Add(1)
	s.cache.Add(sourceVersion, text)
	return Result{Text: text, Present: true}, nil
}
