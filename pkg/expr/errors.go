package expr

import (
	"errors"
	"fmt"
)

// ErrFuncExists is returned when registering a function under a name that
// is already taken.
var ErrFuncExists = errors.New("function already registered")

// ParseErrorKind classifies parse failures.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnterminatedString
	ExpectedCommaOrParen
	EmptyExpression
	// Template-level kinds, shared here so template and expression
	// parsing report through one error type.
	UnclosedPlaceholder
	UnbalancedBrace
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnterminatedString:
		return "unterminated string"
	case ExpectedCommaOrParen:
		return "expected ',' or ')'"
	case EmptyExpression:
		return "empty expression"
	case UnclosedPlaceholder:
		return "unclosed placeholder"
	case UnbalancedBrace:
		return "unbalanced brace"
	default:
		return "parse error"
	}
}

// ParseError reports a tokenizer or parser rejection. Offset is a byte
// offset into the original source text.
type ParseError struct {
	Offset int
	Kind   ParseErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parse error at %d: %s: %s", e.Offset, e.Kind, e.Detail)
	}
	return fmt.Sprintf("parse error at %d: %s", e.Offset, e.Kind)
}

// FuncErrorKind classifies function call failures.
type FuncErrorKind int

const (
	KindWrongArgCount FuncErrorKind = iota
	KindWrongArgType
	KindDomain
	KindUnknownFunction
)

// FunctionError reports a failed function call: arity mismatch, argument
// type mismatch, a domain violation, or an unknown function name. The
// evaluator fills in Function and Pos when the function itself did not.
type FunctionError struct {
	Function string
	Pos      int
	Kind     FuncErrorKind

	// WrongArgCount
	Expected, Got int
	// WrongArgType
	Index int
	Want  Kind
	// Domain
	Reason string
}

func (e *FunctionError) Error() string {
	switch e.Kind {
	case KindWrongArgCount:
		return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Function, e.Expected, e.Got)
	case KindWrongArgType:
		return fmt.Sprintf("%s: argument %d must be a %s", e.Function, e.Index, e.Want)
	case KindDomain:
		return fmt.Sprintf("%s: %s", e.Function, e.Reason)
	case KindUnknownFunction:
		return fmt.Sprintf("unknown function %q", e.Function)
	default:
		return fmt.Sprintf("%s: call failed", e.Function)
	}
}

// WrongArgCount builds an arity-mismatch error. Function name and
// position are attached by the evaluator.
func WrongArgCount(expected, got int) *FunctionError {
	return &FunctionError{Kind: KindWrongArgCount, Expected: expected, Got: got}
}

// WrongArgType builds a type-mismatch error for the argument at index.
func WrongArgType(index int, want Kind) *FunctionError {
	return &FunctionError{Kind: KindWrongArgType, Index: index, Want: want}
}

// DomainErr builds a domain-violation error (inverted range, bad weight,
// probability out of range).
func DomainErr(format string, args ...any) *FunctionError {
	return &FunctionError{Kind: KindDomain, Reason: fmt.Sprintf(format, args...)}
}
