package faker

import (
	"errors"
	"math"
	"strconv"

	"github.com/dxcli/dx/internal/rng"
	"github.com/dxcli/dx/pkg/expr"
)

// maxDefaultMagnitude bounds Number.positive / Number.negative defaults.
const maxDefaultMagnitude = int64(math.MaxInt32)

// newBuiltins wires every DSL function against this Faker. The dual
// names (option / options.option, number / Number.between) are aliases
// of one implementation each.
func newBuiltins(f *Faker) *expr.Registry {
	reg := expr.NewRegistry()

	// Placeholder rewrites.
	reg.MustRegister("numerify", stringFn(func(r *rng.RNG, s string) (string, error) {
		return Numerify(r, s), nil
	}))
	reg.MustRegister("letterify", stringFn(func(r *rng.RNG, s string) (string, error) {
		return Letterify(r, s), nil
	}))
	reg.MustRegister("bothify", stringFn(func(r *rng.RNG, s string) (string, error) {
		return Bothify(r, s), nil
	}))
	reg.MustRegister("exemplify", stringFn(func(r *rng.RNG, s string) (string, error) {
		return Exemplify(r, s), nil
	}))

	// Generative patterns and nested templates.
	reg.MustRegister("regexify", stringFn(func(r *rng.RNG, s string) (string, error) {
		return f.Regexify(s)
	}))
	reg.MustRegister("templatify", stringFn(func(r *rng.RNG, s string) (string, error) {
		if f.depth >= maxTemplateDepth {
			return "", expr.DomainErr("template nesting deeper than %d", maxTemplateDepth)
		}
		f.depth++
		defer func() { f.depth-- }()
		return f.Render(s)
	}))

	// Case transforms, ASCII-safe.
	reg.MustRegister("uppercase", stringFn(func(r *rng.RNG, s string) (string, error) {
		return asciiMap(s, asciiUpper), nil
	}))
	reg.MustRegister("lowercase", stringFn(func(r *rng.RNG, s string) (string, error) {
		return asciiMap(s, asciiLower), nil
	}))
	reg.MustRegister("capitalize", stringFn(func(r *rng.RNG, s string) (string, error) {
		if s == "" {
			return s, nil
		}
		// Byte-wise so multi-byte runes pass through intact.
		b := []byte(s)
		b[0] = asciiUpper(b[0])
		for i := 1; i < len(b); i++ {
			b[i] = asciiLower(b[i])
		}
		return string(b), nil
	}))

	// Integer ranges.
	number := func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) != 2 {
			return expr.Value{}, expr.WrongArgCount(2, len(args))
		}
		lo, err := argInt(args, 0)
		if err != nil {
			return expr.Value{}, err
		}
		hi, err := argInt(args, 1)
		if err != nil {
			return expr.Value{}, err
		}
		return uniformIntValue(r, lo, hi)
	}
	reg.MustRegister("number", number)
	reg.MustRegister("Number.number", number)
	reg.MustRegister("Number.between", number)

	reg.MustRegister("Number.decimal", func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return expr.Value{}, expr.WrongArgCount(2, len(args))
		}
		lo, err := argFloat(args, 0)
		if err != nil {
			return expr.Value{}, err
		}
		hi, err := argFloat(args, 1)
		if err != nil {
			return expr.Value{}, err
		}
		places := int64(2)
		if len(args) == 3 {
			if places, err = argInt(args, 2); err != nil {
				return expr.Value{}, err
			}
			if places < 0 {
				return expr.Value{}, expr.DomainErr("negative decimal places %d", places)
			}
		}
		v, err := r.UniformFloatInclusive(lo, hi)
		if err != nil {
			return expr.Value{}, rangeErr(err)
		}
		return expr.String(strconv.FormatFloat(v, 'f', int(places), 64)), nil
	})

	reg.MustRegister("Number.positive", func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) > 1 {
			return expr.Value{}, expr.WrongArgCount(1, len(args))
		}
		max := maxDefaultMagnitude
		if len(args) == 1 {
			var err error
			if max, err = argInt(args, 0); err != nil {
				return expr.Value{}, err
			}
		}
		return uniformIntValue(r, 1, max)
	})
	reg.MustRegister("Number.negative", func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) > 1 {
			return expr.Value{}, expr.WrongArgCount(1, len(args))
		}
		min := -maxDefaultMagnitude
		if len(args) == 1 {
			var err error
			if min, err = argInt(args, 0); err != nil {
				return expr.Value{}, err
			}
		}
		return uniformIntValue(r, min, -1)
	})

	// Selection.
	option := func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) == 0 {
			return expr.Value{}, expr.WrongArgCount(1, 0)
		}
		vals := args
		// A single list argument and variadic values are equivalent.
		if len(args) == 1 {
			if list, ok := args[0].ListVal(); ok {
				vals = list
			}
		}
		if len(vals) == 0 {
			return expr.Value{}, expr.DomainErr("empty option list")
		}
		return vals[r.IntN(len(vals))], nil
	}
	reg.MustRegister("option", option)
	reg.MustRegister("options.option", option)

	weighted := func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) != 1 {
			return expr.Value{}, expr.WrongArgCount(1, len(args))
		}
		pairs, ok := args[0].ListVal()
		if !ok {
			return expr.Value{}, expr.WrongArgType(0, expr.KindList)
		}
		items := make([]WeightedItem, 0, len(pairs))
		for _, p := range pairs {
			pair, ok := p.ListVal()
			if !ok || len(pair) != 2 {
				return expr.Value{}, expr.DomainErr("weighted items must be [value, weight] pairs")
			}
			weight, ok := pair[1].Float()
			if !ok {
				return expr.Value{}, expr.DomainErr("weight %q is not numeric", pair[1].Format())
			}
			items = append(items, WeightedItem{Value: pair[0].Format(), Weight: weight})
		}
		w, err := NewWeighted(items)
		if err != nil {
			return expr.Value{}, expr.DomainErr("%v", err)
		}
		return expr.String(w.Pick(r)), nil
	}
	reg.MustRegister("weighted", weighted)
	reg.MustRegister("options.weighted", weighted)

	return reg
}

// stringFn adapts a one-string-argument function to the registry
// signature, enforcing arity and type.
func stringFn(fn func(r *rng.RNG, s string) (string, error)) expr.Func {
	return func(r *rng.RNG, args []expr.Value) (expr.Value, error) {
		if len(args) != 1 {
			return expr.Value{}, expr.WrongArgCount(1, len(args))
		}
		s, ok := args[0].Str()
		if !ok {
			return expr.Value{}, expr.WrongArgType(0, expr.KindString)
		}
		out, err := fn(r, s)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.String(out), nil
	}
}

func argInt(args []expr.Value, i int) (int64, error) {
	n, ok := args[i].Int()
	if !ok {
		return 0, expr.WrongArgType(i, expr.KindInteger)
	}
	return n, nil
}

func argFloat(args []expr.Value, i int) (float64, error) {
	f, ok := args[i].Float()
	if !ok {
		return 0, expr.WrongArgType(i, expr.KindNumber)
	}
	return f, nil
}

func uniformIntValue(r *rng.RNG, lo, hi int64) (expr.Value, error) {
	n, err := r.UniformInt(lo, hi)
	if err != nil {
		return expr.Value{}, rangeErr(err)
	}
	return expr.String(strconv.FormatInt(n, 10)), nil
}

// rangeErr converts kernel range errors into DSL domain errors.
func rangeErr(err error) error {
	if errors.Is(err, rng.ErrInvertedRange) {
		return expr.DomainErr("%v", err)
	}
	return err
}

func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func asciiMap(s string, fn func(byte) byte) string {
	b := []byte(s)
	for i := range b {
		b[i] = fn(b[i])
	}
	return string(b)
}
