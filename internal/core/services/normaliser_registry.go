package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// NormaliserRegistry dispatches files to normalisers by extension.
type NormaliserRegistry struct {
	mu          sync.RWMutex
	normalisers map[string]driven.Normaliser
}

// NewNormaliserRegistry creates a registry holding the given normalisers.
// A later normaliser replaces an earlier one for a shared extension.
func NewNormaliserRegistry(normalisers ...driven.Normaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{
		normalisers: make(map[string]driven.Normaliser),
	}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser for each of its extensions.
func (r *NormaliserRegistry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range normaliser.Extensions() {
		r.normalisers[strings.ToLower(ext)] = normaliser
	}
}

// Lookup returns the normaliser for path's extension.
func (r *NormaliserRegistry) Lookup(path string) (driven.Normaliser, error) {
	ext := domain.ExtensionOf(path)

	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.normalisers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, ext)
	}
	return n, nil
}

// Extensions returns the registered extensions, sorted.
func (r *NormaliserRegistry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.normalisers))
	for ext := range r.normalisers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
