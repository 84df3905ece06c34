// Package pattern implements the generative regex subset behind regexify.
// A compiled Pattern produces strings that would match the source
// expression; it is a generator, not a matcher.
package pattern

import (
	"fmt"
	"strings"

	"github.com/dxcli/dx/internal/rng"
)

// DefaultMaxRepeat caps the unbounded quantifiers * and + so nested
// alternations cannot expand without limit.
const DefaultMaxRepeat = 8

// Error reports a malformed pattern. Position is a rune offset into the
// source pattern.
type Error struct {
	Position int
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pattern error at %d: %s", e.Position, e.Reason)
}

// Option configures compilation.
type Option func(*parser)

// WithMaxRepeat overrides the ceiling applied to * and + quantifiers.
func WithMaxRepeat(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxRepeat = n
		}
	}
}

// Pattern is a compiled generative pattern. It is immutable and safe to
// reuse across Generate calls and goroutines; all randomness comes from
// the RNG passed to Generate.
type Pattern struct {
	root node
	src  string
}

// Compile parses the pattern source. Malformed patterns fail with *Error.
func Compile(src string, opts ...Option) (*Pattern, error) {
	p := &parser{src: []rune(src), maxRepeat: DefaultMaxRepeat}
	for _, opt := range opts {
		opt(p)
	}
	root, err := p.parseAlternation(false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		// Only an unmatched ')' can stop the parser before the end.
		return nil, &Error{Position: p.pos, Reason: "unmatched ')'"}
	}
	return &Pattern{root: root, src: src}, nil
}

// Generate draws one string from the pattern.
func (p *Pattern) Generate(r *rng.RNG) string {
	var b strings.Builder
	p.root.generate(r, &b)
	return b.String()
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.src }

// Generate compiles src and draws a single string from it.
func Generate(r *rng.RNG, src string, opts ...Option) (string, error) {
	p, err := Compile(src, opts...)
	if err != nil {
		return "", err
	}
	return p.Generate(r), nil
}

// node is one part of a compiled pattern.
type node interface {
	generate(r *rng.RNG, b *strings.Builder)
}

// class emits one rune drawn uniformly from a fixed set.
type class struct {
	chars []rune
}

func (c *class) generate(r *rng.RNG, b *strings.Builder) {
	b.WriteRune(c.chars[r.IntN(len(c.chars))])
}

// sequence emits its parts in order.
type sequence struct {
	parts []node
}

func (s *sequence) generate(r *rng.RNG, b *strings.Builder) {
	for _, p := range s.parts {
		p.generate(r, b)
	}
}

// alternation emits one uniformly chosen branch.
type alternation struct {
	branches []node
}

func (a *alternation) generate(r *rng.RNG, b *strings.Builder) {
	a.branches[r.IntN(len(a.branches))].generate(r, b)
}

// repeat emits its child between min and max times, count drawn uniformly.
type repeat struct {
	child    node
	min, max int
}

func (rp *repeat) generate(r *rng.RNG, b *strings.Builder) {
	n := rp.min
	if rp.max > rp.min {
		n += r.IntN(rp.max - rp.min + 1)
	}
	for i := 0; i < n; i++ {
		rp.child.generate(r, b)
	}
}
