package postprocessors

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// ErrUnknownProcessor is returned when building a name nobody registered.
var ErrUnknownProcessor = errors.New("unknown processor")

// BuilderFunc builds a processor from its section of the pipeline config,
// e.g. {"chunk_size": 500, "overlap": 50} for the chunker. cfg may be nil.
type BuilderFunc func(cfg map[string]any) (driven.PostProcessor, error)

// Registry resolves processor names from settings to builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

// NewRegistry returns an empty registry. See RegisterDefaults.
func NewRegistry() *Registry {
	return &Registry{builders: map[string]BuilderFunc{}}
}

// Register binds name to builder, replacing any earlier binding.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.mu.Lock()
	r.builders[name] = builder
	r.mu.Unlock()
}

// Build runs the builder registered under name.
func (r *Registry) Build(name string, cfg map[string]any) (driven.PostProcessor, error) {
	r.mu.RLock()
	builder, ok := r.builders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProcessor, name, r.Names())
	}

	proc, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("processor %q: %w", name, err)
	}
	return proc, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builders[name]
	return ok
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
