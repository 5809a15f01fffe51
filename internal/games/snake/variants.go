package snake

import "github.com/vovakirdan/tui-snake/internal/registry"

func init() {
	registry.Register(registry.Variant{ID: "classic", Title: "Snake", Width: 20, Height: 20})
	registry.Register(registry.Variant{ID: "small", Title: "Snake (Small)", Width: 10, Height: 10})
	registry.Register(registry.Variant{ID: "wide", Title: "Snake (Wide)", Width: 32, Height: 16})
}

// NewVariantSession starts a session on the board registered under id.
func NewVariantSession(id string, seed int64, budget int) (*Session, error) {
	v, err := registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return NewSession(Options{
		Width:  v.Width,
		Height: v.Height,
		Seed:   seed,
		Placer: RejectionPlacer{Budget: budget},
	})
}
