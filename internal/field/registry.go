package field

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Registry holds presets by name. It starts with the built-ins and accepts
// custom presets loaded from configuration.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset

	formOnce sync.Once
	form     *validator.Validate
}

// NewRegistry returns a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset)}
	for _, p := range []Preset{Plain, Phone, Email, Password} {
		r.presets[p.Name] = p
	}
	return r
}

// Register adds or replaces a preset.
func (r *Registry) Register(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.Name] = p
	return nil
}

// Get returns the preset registered under name.
func (r *Registry) Get(name string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[name]
	return p, ok
}

// Names lists registered presets in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
