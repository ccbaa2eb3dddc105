// Package registry holds the process-wide map from ASTERIX category number
// to its Category schema. Registration is last-write-wins and is expected
// to happen at startup; lookups are safe for concurrent use with
// registration via a coarse RWMutex, so a long-running process may add
// categories without synchronizing with in-flight decode/encode calls.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/asterixgo/codec/internal/schema"
)

// Registry maps a CAT byte to its registered Category.
type Registry struct {
	mu   sync.RWMutex
	cats map[uint8]*schema.Category
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{cats: make(map[uint8]*schema.Category)}
}

// Register validates cat (via schema.BuildCategory) and installs it,
// replacing any previously registered category with the same Cat number.
func (r *Registry) Register(cat schema.Category) error {
	built, err := schema.BuildCategory(cat)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := built
	r.cats[built.Cat] = &c
	return nil
}

// Category looks up a previously registered category. It fails if cat is
// not registered.
func (r *Registry) Category(cat uint8) (*schema.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cats[cat]
	if !ok {
		return nil, fmt.Errorf("registry: category %d is not registered", cat)
	}
	return c, nil
}

// CatNumbers returns every registered CAT number, sorted ascending.
func (r *Registry) CatNumbers() []uint8 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uint8, 0, len(r.cats))
	for cat := range r.cats {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
