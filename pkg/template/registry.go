package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dxcli/dx/internal/rng"
)

// ErrProviderExists is returned when registering a provider under a name
// that is already taken. Collisions are errors, not silent overrides.
var ErrProviderExists = errors.New("provider already registered")

// Provider produces one value for a template hole. Providers are pure:
// they draw from the RNG and perform no I/O, so a fixed seed reproduces
// their output.
type Provider func(r *rng.RNG) (string, error)

// UnknownProviderError reports a template hole naming an unregistered
// provider. Pos is the byte offset of the hole in the template source,
// or -1 when the reference came from inside an expression.
type UnknownProviderError struct {
	Name string
	Pos  int
}

func (e *UnknownProviderError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("unknown provider %q at %d", e.Name, e.Pos)
	}
	return fmt.Sprintf("unknown provider %q", e.Name)
}

// ProviderRegistry maps hole names to providers. Registration is
// write-once and lookup is case-sensitive.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewProviderRegistry returns an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[string]Provider)}
}

// Register adds a provider under name. A second registration with the
// same name fails with ErrProviderExists.
func (pr *ProviderRegistry) Register(name string, p Provider) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if _, ok := pr.providers[name]; ok {
		return fmt.Errorf("%w: %q", ErrProviderExists, name)
	}
	pr.providers[name] = p
	return nil
}

// MustRegister is Register for wiring defaults, where a duplicate name
// is a programming error.
func (pr *ProviderRegistry) MustRegister(name string, p Provider) {
	if err := pr.Register(name, p); err != nil {
		panic(err)
	}
}

// Lookup returns the provider registered under name.
func (pr *ProviderRegistry) Lookup(name string) (Provider, bool) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	p, ok := pr.providers[name]
	return p, ok
}

// Names returns all registered names in sorted order.
func (pr *ProviderRegistry) Names() []string {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	names := make([]string, 0, len(pr.providers))
	for name := range pr.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
