package template

import (
	"strings"

	"github.com/dxcli/dx/pkg/expr"
)

// Template is a parsed template: an ordered sequence of literal text
// chunks and holes. Templates are immutable after parsing and may be
// cached and rendered many times.
type Template struct {
	src    string
	chunks []chunk
}

type chunk interface {
	chunkNode()
}

// textChunk is literal text emitted verbatim. Rendering text never
// advances the PRNG.
type textChunk struct {
	text string
}

// simpleHole is a bare provider reference: {first_name}.
type simpleHole struct {
	name string
	pos  int
}

// exprHole is an embedded expression: {{ numerify("###") }}.
type exprHole struct {
	node expr.Node
	pos  int
}

func (textChunk) chunkNode()  {}
func (simpleHole) chunkNode() {}
func (exprHole) chunkNode()   {}

// Source returns the original template text.
func (t *Template) Source() string { return t.src }

// Parse parses a template. `{name}` is a provider hole, `{{ expr }}` an
// expression hole, `{{{{` and `}}}}` emit literal double braces. Braces
// must balance; an unclosed placeholder fails with a ParseError whose
// offset points at the first unconsumed byte.
func Parse(src string) (*Template, error) {
	t := &Template{src: src}
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			t.chunks = append(t.chunks, textChunk{text: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(src) {
		switch src[i] {
		case '{':
			if strings.HasPrefix(src[i:], "{{{{") {
				text.WriteString("{{")
				i += 4
				continue
			}
			if strings.HasPrefix(src[i:], "{{") {
				end := scanExprEnd(src, i+2)
				if end < 0 {
					return nil, &expr.ParseError{Offset: len(src), Kind: expr.UnclosedPlaceholder}
				}
				node, err := expr.Parse(src[i+2 : end])
				if err != nil {
					// Rebase expression offsets onto the template source.
					if perr, ok := err.(*expr.ParseError); ok {
						perr.Offset += i + 2
					}
					return nil, err
				}
				flush()
				t.chunks = append(t.chunks, exprHole{node: node, pos: i})
				i = end + 2
				continue
			}
			end := strings.IndexByte(src[i+1:], '}')
			if end < 0 {
				return nil, &expr.ParseError{Offset: len(src), Kind: expr.UnclosedPlaceholder}
			}
			name := src[i+1 : i+1+end]
			if !validHoleName(name) {
				return nil, &expr.ParseError{Offset: i + 1, Kind: expr.UnexpectedToken, Detail: name}
			}
			flush()
			t.chunks = append(t.chunks, simpleHole{name: name, pos: i})
			i += end + 2
		case '}':
			if strings.HasPrefix(src[i:], "}}}}") {
				text.WriteString("}}")
				i += 4
				continue
			}
			return nil, &expr.ParseError{Offset: i, Kind: expr.UnbalancedBrace}
		default:
			text.WriteByte(src[i])
			i++
		}
	}
	flush()
	return t, nil
}

// scanExprEnd finds the closing `}}` of an expression hole, skipping
// string literals so quoted braces do not terminate the hole. Returns -1
// when no closing braces exist.
func scanExprEnd(src string, from int) int {
	var quote byte
	for i := from; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++ // skip escaped char
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '}':
			if i+1 < len(src) && src[i+1] == '}' {
				return i
			}
		}
	}
	return -1
}

// validHoleName reports whether name is a legal provider reference:
// [A-Za-z_][A-Za-z0-9_.]*.
func validHoleName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '.'):
		default:
			return false
		}
	}
	return true
}
