package template

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/expr"
)

// testRenderer wires a deterministic provider and a draw() function that
// consumes one RNG value per call.
func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	providers := NewProviderRegistry()
	providers.MustRegister("greeting", func(r *rng.RNG) (string, error) {
		return "hello", nil
	})
	providers.MustRegister("die", func(r *rng.RNG) (string, error) {
		return strconv.Itoa(1 + r.IntN(6)), nil
	})

	funcs := expr.NewRegistry()
	funcs.MustRegister("draw", func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		return expr.Integer(int64(r.IntN(1000))), nil
	})
	funcs.MustRegister("upper", func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) != 1 {
			return expr.Value{}, expr.WrongArgCount(1, len(args))
		}
		s, ok := args[0].Str()
		if !ok {
			return expr.Value{}, expr.WrongArgType(0, expr.KindString)
		}
		return expr.String(strings.ToUpper(s)), nil
	})

	return &Renderer{Providers: providers, Funcs: funcs}
}

func TestRenderTextAndHoles(t *testing.T) {
	rd := testRenderer(t)
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain text", "no holes here", "no holes here"},
		{"simple hole", "say {greeting}!", "say hello!"},
		{"expr hole", "{{ upper('abc') }}", "ABC"},
		{"identifier in expr", "{{ upper(greeting) }}", "HELLO"},
		{"literal braces", "a {{{{not a hole}}}} b", "a {{not a hole}} b"},
		{"adjacent holes", "{greeting}{greeting}", "hellohello"},
		{"empty template", "", ""},
		{"quoted braces in expr", `{{ upper('}}x') }}`, "}}X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rd.RenderString(rng.New(1), tt.src)
			if err != nil {
				t.Fatalf("RenderString(%q): %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("RenderString(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	rd := testRenderer(t)
	const src = "{die} {die} {{draw()}}"
	a, err := rd.RenderString(rng.New(42), src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := rd.RenderString(rng.New(42), src)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestLiteralTextDoesNotAdvancePRNG(t *testing.T) {
	rd := testRenderer(t)
	short, err := rd.RenderString(rng.New(9), "x{die}")
	if err != nil {
		t.Fatal(err)
	}
	long, err := rd.RenderString(rng.New(9), "a much longer literal prefix {die}")
	if err != nil {
		t.Fatal(err)
	}
	if short[len(short)-1:] != long[len(long)-1:] {
		t.Fatalf("hole value shifted by preceding text: %q vs %q", short, long)
	}
}

func TestRenderUnknownProvider(t *testing.T) {
	rd := testRenderer(t)

	_, err := rd.RenderString(rng.New(1), "hi {nobody}")
	var upe *UnknownProviderError
	if !errors.As(err, &upe) {
		t.Fatalf("got %T, want *UnknownProviderError", err)
	}
	if upe.Name != "nobody" || upe.Pos != 3 {
		t.Fatalf("unexpected error %+v", upe)
	}

	// Also through an expression identifier.
	_, err = rd.RenderString(rng.New(1), "{{ upper(nobody) }}")
	if !errors.As(err, &upe) {
		t.Fatalf("got %T, want *UnknownProviderError", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kind   expr.ParseErrorKind
		offset int
	}{
		{"unclosed expr hole", "{{unclosed", expr.UnclosedPlaceholder, 10},
		{"unclosed simple hole", "abc {def", expr.UnclosedPlaceholder, 8},
		{"stray close", "abc } def", expr.UnbalancedBrace, 4},
		{"empty hole", "{}", expr.UnexpectedToken, 1},
		{"bad hole name", "{not a name}", expr.UnexpectedToken, 1},
		{"empty expr hole", "{{}}", expr.EmptyExpression, 2},
		{"expr error rebased", "ab{{ number(1, }}", expr.UnexpectedToken, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.src)
			}
			var perr *expr.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) returned %T, want *ParseError", tt.src, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tt.kind)
			}
			if perr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", perr.Offset, tt.offset)
			}
		})
	}
}

func TestEvalString(t *testing.T) {
	rd := testRenderer(t)

	out, err := rd.EvalString(rng.New(1), "upper(greeting)")
	if err != nil {
		t.Fatal(err)
	}
	if out != "HELLO" {
		t.Fatalf("EvalString = %q, want %q", out, "HELLO")
	}

	// Offsets are relative to the expression source itself.
	_, err = rd.EvalString(rng.New(1), "upper(")
	var perr *expr.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if perr.Offset != 6 {
		t.Fatalf("offset = %d, want 6", perr.Offset)
	}
}

func TestRegistryWriteOnce(t *testing.T) {
	reg := NewProviderRegistry()
	p := func(r *rng.RNG) (string, error) { return "x", nil }
	if err := reg.Register("p", p); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("p", p); !errors.Is(err, ErrProviderExists) {
		t.Fatalf("duplicate Register: got %v, want ErrProviderExists", err)
	}
}

func TestTemplateReuse(t *testing.T) {
	rd := testRenderer(t)
	tmpl, err := Parse("{die}-{die}")
	if err != nil {
		t.Fatal(err)
	}
	a, err := rd.Render(rng.New(3), tmpl)
	if err != nil {
		t.Fatal(err)
	}
	b, err := rd.Render(rng.New(3), tmpl)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("cached template diverged: %q vs %q", a, b)
	}
}
