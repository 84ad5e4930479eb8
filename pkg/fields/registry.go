package fields

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a field from configuration.
type Factory func(cfg Config) (Field, error)

// Registry maps type tags to factories so fields can be built from loaded
// configuration. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry returns a registry holding every built-in variant.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(TypeButton, func(cfg Config) (Field, error) { return NewButton(cfg) })
	r.MustRegister(TypeButtonInput, func(cfg Config) (Field, error) { return NewButtonInput(cfg) })
	r.MustRegister(TypeResetButton, func(cfg Config) (Field, error) { return NewResetButton(cfg) })
	r.MustRegister(TypeResetInput, func(cfg Config) (Field, error) { return NewResetInput(cfg) })
	r.MustRegister(TypeSubmitButton, func(cfg Config) (Field, error) { return NewSubmitButton(cfg) })
	r.MustRegister(TypeSubmitInput, func(cfg Config) (Field, error) { return NewSubmitInput(cfg) })
	r.MustRegister(TypeImage, func(cfg Config) (Field, error) { return NewImage(cfg) })
	return r
}

// Register adds a factory for fieldType. Duplicate types return an error.
func (r *Registry) Register(fieldType string, factory Factory) error {
	fieldType = normalizeType(fieldType)
	if fieldType == "" {
		return fmt.Errorf("fields: field type is required")
	}
	if factory == nil {
		return fmt.Errorf("fields: factory for %q is nil", fieldType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[fieldType]; exists {
		return fmt.Errorf("fields: field type %q already registered", fieldType)
	}
	r.factories[fieldType] = factory
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(fieldType string, factory Factory) {
	if err := r.Register(fieldType, factory); err != nil {
		panic(err)
	}
}

// Build constructs the variant named by cfg.Type.
func (r *Registry) Build(cfg Config) (Field, error) {
	fieldType := normalizeType(cfg.Type)
	if fieldType == "" {
		return nil, configError("", cfg.Name, "field type is required")
	}

	r.mu.RLock()
	factory, ok := r.factories[fieldType]
	r.mu.RUnlock()
	if !ok {
		return nil, configError(fieldType, cfg.Name, "unknown field type")
	}

	cfg.Type = fieldType
	return factory(cfg)
}

// Has reports whether fieldType is registered.
func (r *Registry) Has(fieldType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalizeType(fieldType)]
	return ok
}

// Types returns the registered type tags sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

func normalizeType(fieldType string) string {
	return strings.ToLower(strings.TrimSpace(fieldType))
}
