package paging

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Names of the built-in generators.
const (
	GeneratorDefault = "default"
	GeneratorSliding = "sliding"
)

// Fallbacks used when the registry defaults are zero.
const (
	FallbackPageNumber = 1
	FallbackPageSize   = 50
)

// Defaults are the option values used when a paged collection is created
// without an explicit page number or page size. A zero field falls back to
// FallbackPageNumber or FallbackPageSize.
type Defaults struct {
	PageNumber int `json:"pageNumber,omitempty"`
	PageSize   int `json:"pageSize,omitempty"`
}

// Factory builds a fresh generator for every paged collection that asks for
// it by name.
type Factory func() Generator

// Registry maps generator names to generators and holds the default options.
//
// Generators registered with Register are shared: every collection that
// selects them by name holds the same instance, so changing the window of
// the registered "sliding" generator affects all of them. Use
// RegisterFactory for per-collection instances.
//
// Defaults only affect collections created after they change.
type Registry struct {
	mu         sync.RWMutex
	defaults   Defaults
	generators map[string]Generator
	factories  map[string]Factory
	sliding    *Sliding
	logger     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithDefaults sets the initial default options.
func WithDefaults(d Defaults) RegistryOption {
	return func(r *Registry) {
		r.defaults = d
	}
}

// NewRegistry creates a registry holding the "default" and "sliding"
// generators, with defaults of page 1 and 50 items per page.
func NewRegistry(opts ...RegistryOption) *Registry {
	sliding := newDefaultSliding()
	r := &Registry{
		defaults: Defaults{PageNumber: FallbackPageNumber, PageSize: FallbackPageSize},
		generators: map[string]Generator{
			GeneratorDefault: FullRange,
			GeneratorSliding: sliding,
		},
		factories: map[string]Factory{},
		sliding:   sliding,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by Extend when no
// WithRegistry option is given.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Defaults returns the current default options.
func (r *Registry) Defaults() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// SetDefaults replaces the default options. Negative values are rejected;
// zero values fall back to the built-in defaults.
func (r *Registry) SetDefaults(d Defaults) error {
	if d.PageNumber < 0 {
		return &OptionError{Option: "pageNumber", Value: d.PageNumber}
	}
	if d.PageSize < 0 {
		return &OptionError{Option: "pageSize", Value: d.PageSize}
	}

	r.mu.Lock()
	r.defaults = d
	r.mu.Unlock()
	return nil
}

// pageNumber resolves the default page number.
func (r *Registry) pageNumber() int {
	if n := r.Defaults().PageNumber; n > 0 {
		return n
	}
	return FallbackPageNumber
}

// pageSize resolves the default page size.
func (r *Registry) pageSize() int {
	if n := r.Defaults().PageSize; n > 0 {
		return n
	}
	return FallbackPageSize
}

// Sliding returns the shared sliding generator registered at construction.
// It stays valid even if "sliding" is later re-registered.
func (r *Registry) Sliding() *Sliding {
	return r.sliding
}

// Register adds or replaces a shared generator under name.
func (r *Registry) Register(name string, g Generator) error {
	if name == "" {
		return fmt.Errorf("paging: generator name must not be empty")
	}
	if g == nil {
		return fmt.Errorf("paging: generator %q must not be nil", name)
	}

	r.mu.Lock()
	delete(r.factories, name)
	r.generators[name] = g
	r.mu.Unlock()

	r.logger.Debug("paging generator registered", "name", name, "kind", g.Kind().String())
	return nil
}

// RegisterFactory adds or replaces a generator factory under name. Each
// lookup of name calls f, giving every collection its own instance.
func (r *Registry) RegisterFactory(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("paging: generator name must not be empty")
	}
	if f == nil {
		return fmt.Errorf("paging: factory %q must not be nil", name)
	}

	r.mu.Lock()
	delete(r.generators, name)
	r.factories[name] = f
	r.mu.Unlock()

	r.logger.Debug("paging generator factory registered", "name", name)
	return nil
}

// Unregister removes name. It reports whether anything was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, shared := r.generators[name]
	_, factory := r.factories[name]
	delete(r.generators, name)
	delete(r.factories, name)
	return shared || factory
}

// Lookup returns the generator registered under name. Names backed by a
// factory return a fresh instance on every call.
func (r *Registry) Lookup(name string) (Generator, bool) {
	r.mu.RLock()
	g, ok := r.generators[name]
	f, isFactory := r.factories[name]
	r.mu.RUnlock()

	if ok {
		return g, true
	}
	if isFactory {
		if g := f(); g != nil {
			return g, true
		}
	}
	return nil, false
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.generators)+len(r.factories))
	for name := range r.generators {
		names = append(names, name)
	}
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// resolve looks up name, returning a *GeneratorError when it is unknown.
func (r *Registry) resolve(name string) (Generator, error) {
	g, ok := r.Lookup(name)
	if !ok {
		return nil, &GeneratorError{Name: name}
	}
	return g, nil
}
