package sink

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateHint is returned when a hint is registered twice in one pass.
var ErrDuplicateHint = errors.New("hint already registered in this pass")

// Sink accepts generated text artifacts.
type Sink interface {
	AddSource(hint, text string) error
}

// Pass wraps a Sink for the duration of one build pass.
type Pass struct {
	mu   sync.Mutex
	out  Sink
	seen map[string]struct{}
}

// NewPass starts a new build pass over out.
func NewPass(out Sink) *Pass {
	return &Pass{out: out, seen: make(map[string]struct{})}
}

// AddSource forwards the artifact unless hint was already registered.
func (p *Pass) AddSource(hint, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, dup := p.seen[hint]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateHint, hint)
	}
	if err := p.out.AddSource(hint, text); err != nil {
		return fmt.Errorf("failed to register %s: %w", hint, err)
	}
	p.seen[hint] = struct{}{}
	return nil
}
