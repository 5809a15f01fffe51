// Package registry keeps the board variants a host can offer. Variants
// register themselves in init() functions and are always addressed by their
// immutable ID, never by position in a list.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes one playable board.
type Variant struct {
	ID     string // stable identifier used by the CLI and score storage
	Title  string // display name
	Width  int
	Height int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant. It panics if the ID is already taken.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the variant registered under id.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
