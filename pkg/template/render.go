package template

import (
	"strings"

	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/expr"
)

// Renderer binds a provider registry and a function registry. Both are
// read-only during rendering, so one Renderer serves many concurrent
// renders as long as each render owns its RNG.
type Renderer struct {
	Providers *ProviderRegistry
	Funcs     *expr.Registry
}

// Render evaluates the template's holes in order, appending text chunks
// verbatim. Only hole evaluation advances the PRNG, so changing literal
// text never shifts the draws of subsequent holes.
func (rd *Renderer) Render(r *rng.RNG, t *Template) (string, error) {
	var b strings.Builder
	env := rd.env(r)
	for _, c := range t.chunks {
		switch c := c.(type) {
		case textChunk:
			b.WriteString(c.text)
		case simpleHole:
			p, ok := rd.Providers.Lookup(c.name)
			if !ok {
				return "", &UnknownProviderError{Name: c.name, Pos: c.pos}
			}
			val, err := p(r)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
		case exprHole:
			val, err := expr.EvalString(c.node, env)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
		}
	}
	return b.String(), nil
}

// RenderString parses and renders src in one step.
func (rd *Renderer) RenderString(r *rng.RNG, src string) (string, error) {
	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return rd.Render(r, t)
}

// EvalString parses src as a single bare expression and evaluates it.
// Error offsets refer to src itself, not to a wrapping template.
func (rd *Renderer) EvalString(r *rng.RNG, src string) (string, error) {
	node, err := expr.Parse(src)
	if err != nil {
		return "", err
	}
	return expr.EvalString(node, rd.env(r))
}

// env builds the expression environment: bare identifiers inside
// expression holes resolve through the provider registry.
func (rd *Renderer) env(r *rng.RNG) *expr.Env {
	return &expr.Env{
		RNG:   r,
		Funcs: rd.Funcs,
		Ident: func(name string) (expr.Value, error) {
			p, ok := rd.Providers.Lookup(name)
			if !ok {
				return expr.Value{}, &UnknownProviderError{Name: name, Pos: -1}
			}
			s, err := p(r)
			if err != nil {
				return expr.Value{}, err
			}
			return expr.String(s), nil
		},
	}
}
