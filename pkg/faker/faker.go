package faker

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/dxcli/dx/internal/dict"
	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/charset"
	"github.com/dxcli/dx/pkg/expr"
	"github.com/dxcli/dx/pkg/pattern"
	"github.com/dxcli/dx/pkg/template"
)

// maxTemplateDepth bounds templatify nesting.
const maxTemplateDepth = 8

// Faker owns one seeded RNG and the registries built around it: the
// dictionary lists, the default and user providers, and the expression
// built-ins. Registries are immutable after New; the RNG is mutable and
// exclusively owned, so a Faker is not safe for concurrent use.
type Faker struct {
	rng       *rng.RNG
	dicts     *dict.Registry
	providers *template.ProviderRegistry
	funcs     *expr.Registry
	renderer  *template.Renderer
	gf        *gofakeit.Faker

	maxRepeat int
	depth     int
}

type options struct {
	seed      *uint64
	generator *rng.RNG
	dicts     *dict.Registry
	providers map[string]template.Provider
	maxRepeat int
}

// Option configures a Faker.
type Option func(*options)

// WithSeed fixes the seed. Without it the Faker seeds from entropy and
// output is not reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithRNG supplies an existing generator, e.g. to share one stream
// across several fakers.
func WithRNG(g *rng.RNG) Option {
	return func(o *options) { o.generator = g }
}

// WithDictionaries replaces the default word lists.
func WithDictionaries(d *dict.Registry) Option {
	return func(o *options) { o.dicts = d }
}

// WithProvider adds a user provider on top of the defaults. Colliding
// with a default name makes New fail.
func WithProvider(name string, p template.Provider) Option {
	return func(o *options) {
		if o.providers == nil {
			o.providers = make(map[string]template.Provider)
		}
		o.providers[name] = p
	}
}

// WithMaxRepeat overrides the regexify ceiling for * and +.
func WithMaxRepeat(n int) Option {
	return func(o *options) { o.maxRepeat = n }
}

// New builds a Faker with the default providers and built-in functions.
func New(opts ...Option) (*Faker, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f := &Faker{maxRepeat: pattern.DefaultMaxRepeat}
	switch {
	case o.generator != nil:
		f.rng = o.generator
	case o.seed != nil:
		f.rng = rng.New(*o.seed)
	default:
		f.rng = rng.NewFromEntropy()
	}
	if o.maxRepeat > 0 {
		f.maxRepeat = o.maxRepeat
	}

	f.dicts = o.dicts
	if f.dicts == nil {
		f.dicts = dict.Default()
	}

	// gofakeit shares the kernel's PCG source so the extended providers
	// stay on the single seeded stream.
	f.gf = gofakeit.NewFaker(f.rng.Source(), false)

	f.providers = defaultProviders(f.dicts, f.gf)
	for name, p := range o.providers {
		if err := f.providers.Register(name, p); err != nil {
			return nil, fmt.Errorf("user provider: %w", err)
		}
	}

	f.funcs = newBuiltins(f)
	f.renderer = &template.Renderer{Providers: f.providers, Funcs: f.funcs}
	return f, nil
}

// RNG exposes the underlying generator.
func (f *Faker) RNG() *rng.RNG { return f.rng }

// Providers exposes the provider registry, e.g. for listing.
func (f *Faker) Providers() *template.ProviderRegistry { return f.providers }

// Render parses and renders a template string.
func (f *Faker) Render(src string) (string, error) {
	return f.renderer.RenderString(f.rng, src)
}

// RenderTemplate renders a pre-parsed template, for callers that cache
// parses across batch slots.
func (f *Faker) RenderTemplate(t *template.Template) (string, error) {
	return f.renderer.Render(f.rng, t)
}

// Eval parses and evaluates a bare expression. Error offsets refer to
// src as the caller wrote it.
func (f *Faker) Eval(src string) (string, error) {
	return f.renderer.EvalString(f.rng, src)
}

// Regexify draws one string from the generative pattern.
func (f *Faker) Regexify(src string) (string, error) {
	return pattern.Generate(f.rng, src, pattern.WithMaxRepeat(f.maxRepeat))
}

// Numerify replaces '#' with digits.
func (f *Faker) Numerify(s string) string { return Numerify(f.rng, s) }

// Letterify replaces '?' with lowercase letters.
func (f *Faker) Letterify(s string) string { return Letterify(f.rng, s) }

// Bothify applies both substitutions.
func (f *Faker) Bothify(s string) string { return Bothify(f.rng, s) }

// Exemplify rewrites \d, \w and \W classes.
func (f *Faker) Exemplify(s string) string { return Exemplify(f.rng, s) }

// Password draws a fixed-length string over the requested classes.
func (f *Faker) Password(length int, lower, upper, digits, symbols bool) string {
	return charset.Password(f.rng, length, lower, upper, digits, symbols)
}

// Batch renders the template n times.
func (f *Faker) Batch(n int, src string) ([]string, error) {
	t, err := template.Parse(src)
	if err != nil {
		return nil, err
	}
	return Batch(n, func() (string, error) { return f.RenderTemplate(t) })
}

// BatchUnique renders the template until n distinct values exist.
func (f *Faker) BatchUnique(n, maxRetries int, src string) ([]string, error) {
	t, err := template.Parse(src)
	if err != nil {
		return nil, err
	}
	return BatchUnique(n, maxRetries, func() (string, error) { return f.RenderTemplate(t) })
}

// BatchNullable renders n slots, each null with probability nullProb.
func (f *Faker) BatchNullable(n int, nullProb float64, src string) ([]*string, error) {
	t, err := template.Parse(src)
	if err != nil {
		return nil, err
	}
	return BatchNullable(f.rng, n, nullProb, func() (string, error) { return f.RenderTemplate(t) })
}
