package filter

import "fmt"

// Factory builds a command from the finalized CLI options. Factories
// are closures so parameter capture happens at registration time and
// construction is deferred until a filter is actually selected.
type Factory func() (Command, error)

// Registry maps filter identifiers to factories.
type Registry struct {
	factories map[string]Factory
	ids       []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds an identifier to a factory. Registering the same id
// twice overwrites the earlier factory.
func (r *Registry) Register(id string, f Factory) {
	if _, ok := r.factories[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.factories[id] = f
}

// Build constructs the command registered under id.
func (r *Registry) Build(id string) (Command, error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", id)
	}
	return f()
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// IDs lists the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
