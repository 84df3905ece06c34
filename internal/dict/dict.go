package dict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// ErrListExists is returned when registering a list under a name that is
// already taken. Registration is write-once; collisions are errors, not
// silent overrides.
var ErrListExists = errors.New("dictionary list already registered")

// Registry is a read-only lookup of named word lists. Lists are immutable
// once added, so a built Registry is freely shareable across goroutines.
type Registry struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{lists: make(map[string][]string)}
}

// Default returns a registry populated with the built-in word lists
// (nouns, adjectives, first_names, cities, ...).
func Default() *Registry {
	r := New()
	for name, words := range builtinLists {
		// builtinLists is package-owned and never mutated.
		r.lists[name] = words
	}
	return r
}

// Add registers a named word list. A second Add with the same name fails
// with ErrListExists, including for built-in names.
func (r *Registry) Add(name string, words []string) error {
	if name == "" {
		return errors.New("dictionary list name must not be empty")
	}
	if len(words) == 0 {
		return fmt.Errorf("dictionary list %q is empty", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[name]; ok {
		return fmt.Errorf("%w: %q", ErrListExists, name)
	}
	owned := make([]string, len(words))
	copy(owned, words)
	r.lists[name] = owned
	return nil
}

// Lookup returns the list registered under name. Lookup is case-sensitive.
func (r *Registry) Lookup(name string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	words, ok := r.lists[name]
	return words, ok
}

// Names returns the registered list names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a word list file: one word per line, blank lines and
// '#' comment lines skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}
	return words, nil
}

// ListName derives a registry name from a word list file path:
// "dicts/Star-Wars.txt" becomes "star_wars".
func ListName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.ToLower(base)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, base)
	return base
}
