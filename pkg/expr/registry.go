package expr

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dxcli/dx/internal/rng"
)

// Func is a built-in function implementation. Implementations draw all
// randomness from the passed RNG and perform their own arity and type
// checks, returning *FunctionError on violation.
type Func func(r *rng.RNG, args []Value) (Value, error)

// Registry maps function names to implementations. Registration is
// write-once; aliases (option / options.option) are additional names
// registered against the same Func.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns an empty function registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a function under name. A second registration with the
// same name fails with ErrFuncExists.
func (reg *Registry) Register(name string, fn Func) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.funcs[name]; ok {
		return fmt.Errorf("%w: %q", ErrFuncExists, name)
	}
	reg.funcs[name] = fn
	return nil
}

// MustRegister is Register for wiring built-ins at construction time,
// where a duplicate name is a programming error.
func (reg *Registry) MustRegister(name string, fn Func) {
	if err := reg.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the function registered under name.
func (reg *Registry) Lookup(name string) (Func, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	fn, ok := reg.funcs[name]
	return fn, ok
}

// Names returns all registered names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.funcs))
	for name := range reg.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
