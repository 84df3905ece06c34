package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/dxcli/dx/internal/rng"
)

// testEnv wires a minimal registry: echo(s), pair(a, b), and a draw()
// that consumes one RNG value.
func testEnv(seed uint64) *Env {
	reg := NewRegistry()
	reg.MustRegister("echo", func(r *rng.RNG, args []Value) (Value, error) {
		if len(args) != 1 {
			return Value{}, WrongArgCount(1, len(args))
		}
		s, ok := args[0].Str()
		if !ok {
			return Value{}, WrongArgType(0, KindString)
		}
		return String(s), nil
	})
	reg.MustRegister("pair", func(r *rng.RNG, args []Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, WrongArgCount(2, len(args))
		}
		return String(args[0].Format() + ":" + args[1].Format()), nil
	})
	reg.MustRegister("draw", func(r *rng.RNG, args []Value) (Value, error) {
		return Integer(int64(r.IntN(1000))), nil
	})
	return &Env{
		RNG:   rng.New(seed),
		Funcs: reg,
		Ident: func(name string) (Value, error) {
			if name == "greeting" {
				return String("hello"), nil
			}
			return Value{}, &FunctionError{Function: name, Kind: KindUnknownFunction}
		},
	}
}

func TestEvalBasics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"string literal through call", "echo('hi')", "hi"},
		{"identifier", "greeting", "hello"},
		{"nested call", "pair(echo('a'), 2)", "a:2"},
		{"list formatting", "pair([1, 2], 'x')", "1,2:x"},
		{"bool", "pair(true, false)", "true:false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvalSource(tt.src, testEnv(1))
			if err != nil {
				t.Fatalf("EvalSource(%q): %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("EvalSource(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestEvalUnknownFunction(t *testing.T) {
	_, err := EvalSource("nope(1)", testEnv(1))
	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FunctionError", err)
	}
	if fe.Kind != KindUnknownFunction || fe.Function != "nope" {
		t.Fatalf("unexpected error %v", fe)
	}
}

func TestEvalUnknownIdentifier(t *testing.T) {
	_, err := EvalSource("missing", testEnv(1))
	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FunctionError", err)
	}
	if fe.Function != "missing" {
		t.Fatalf("unexpected error %v", fe)
	}
}

func TestEvalAnnotatesErrors(t *testing.T) {
	_, err := EvalSource("pair(echo(1), 'x')", testEnv(1))
	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FunctionError", err)
	}
	if fe.Function != "echo" || fe.Kind != KindWrongArgType {
		t.Fatalf("unexpected error %v", fe)
	}
	if fe.Pos == 0 {
		t.Fatal("position not annotated")
	}
	if !strings.Contains(fe.Error(), "echo") {
		t.Fatalf("message %q does not name the function", fe.Error())
	}
}

func TestEvalArityError(t *testing.T) {
	_, err := EvalSource("echo('a', 'b')", testEnv(1))
	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FunctionError", err)
	}
	if fe.Kind != KindWrongArgCount || fe.Expected != 1 || fe.Got != 2 {
		t.Fatalf("unexpected error %v", fe)
	}
}

func TestEvalDeterministic(t *testing.T) {
	a, err := EvalSource("pair(draw(), draw())", testEnv(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := EvalSource("pair(draw(), draw())", testEnv(42))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestEvalLeftToRight(t *testing.T) {
	// The first draw must be unaffected by later arguments: evaluating
	// draw() alone and as a first argument yields the same value.
	alone, err := EvalSource("draw()", testEnv(7))
	if err != nil {
		t.Fatal(err)
	}
	first, err := EvalSource("pair(draw(), draw())", testEnv(7))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(first, alone+":") {
		t.Fatalf("first argument %q does not start with standalone draw %q", first, alone)
	}
}

func TestRegistryWriteOnce(t *testing.T) {
	reg := NewRegistry()
	fn := func(r *rng.RNG, args []Value) (Value, error) { return String("x"), nil }
	if err := reg.Register("f", fn); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("f", fn); !errors.Is(err, ErrFuncExists) {
		t.Fatalf("duplicate Register: got %v, want ErrFuncExists", err)
	}
}

func TestValueCoercions(t *testing.T) {
	if _, ok := Number(2.5).Int(); ok {
		t.Fatal("2.5 coerced to integer")
	}
	if n, ok := Number(3.0).Int(); !ok || n != 3 {
		t.Fatalf("3.0 → %d, %v", n, ok)
	}
	if f, ok := Integer(4).Float(); !ok || f != 4 {
		t.Fatalf("4 → %g, %v", f, ok)
	}
	if _, ok := String("s").Int(); ok {
		t.Fatal("string coerced to integer")
	}
}
