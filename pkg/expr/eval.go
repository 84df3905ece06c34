package expr

import (
	"errors"
	"fmt"

	"github.com/dxcli/dx/internal/rng"
)

// Env carries everything an evaluation needs. The RNG is exclusively
// owned by the evaluation; the registry and resolver are read-only.
type Env struct {
	RNG   *rng.RNG
	Funcs *Registry

	// Ident resolves bare identifiers (template variables backed by
	// providers). A nil Ident makes every bare identifier an unknown
	// function error.
	Ident func(name string) (Value, error)
}

// Eval walks the tree and returns the resulting value. Arguments are
// evaluated strictly left to right, so the RNG draw sequence is stable
// for a fixed seed. Evaluation short-circuits on the first error,
// annotating it with the containing call name and source position.
func Eval(node Node, env *Env) (Value, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Val, nil

	case *Identifier:
		if env.Ident == nil {
			return Value{}, &FunctionError{Function: n.Name, Pos: n.Pos(), Kind: KindUnknownFunction}
		}
		v, err := env.Ident(n.Name)
		if err != nil {
			return Value{}, err
		}
		return v, nil

	case *ListLit:
		elems := make([]Value, len(n.Elems))
		for i, e := range n.Elems {
			v, err := Eval(e, env)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return List(elems), nil

	case *Call:
		return evalCall(n.Name, n.Pos(), n.Args, env)

	case *MemberCall:
		return evalCall(n.Receiver+"."+n.Method, n.Pos(), n.Args, env)

	default:
		return Value{}, fmt.Errorf("unsupported node %T", node)
	}
}

// EvalString evaluates node and formats the result, the contract at the
// top level of templates and the CLI.
func EvalString(node Node, env *Env) (string, error) {
	v, err := Eval(node, env)
	if err != nil {
		return "", err
	}
	return v.Format(), nil
}

// EvalSource parses and evaluates an expression string.
func EvalSource(src string, env *Env) (string, error) {
	node, err := Parse(src)
	if err != nil {
		return "", err
	}
	return EvalString(node, env)
}

func evalCall(name string, pos int, argNodes []Node, env *Env) (Value, error) {
	args := make([]Value, len(argNodes))
	for i, a := range argNodes {
		v, err := Eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	fn, ok := env.Funcs.Lookup(name)
	if !ok {
		return Value{}, &FunctionError{Function: name, Pos: pos, Kind: KindUnknownFunction}
	}

	v, err := fn(env.RNG, args)
	if err != nil {
		return Value{}, annotate(err, name, pos)
	}
	return v, nil
}

// annotate stamps the call name and position onto function errors that
// were built without them.
func annotate(err error, name string, pos int) error {
	var fe *FunctionError
	if errors.As(err, &fe) {
		if fe.Function == "" {
			fe.Function = name
		}
		if fe.Pos == 0 {
			fe.Pos = pos
		}
		return err
	}
	return fmt.Errorf("%s: %w", name, err)
}
