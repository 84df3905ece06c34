package expr

import (
	"strings"
)

// Node is a parsed expression tree node. Nodes are immutable after
// parsing and may be cached and re-evaluated freely.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int
	String() string
}

// Literal is a string, numeric, or boolean constant.
type Literal struct {
	Tok Token
	Val Value
}

func (l *Literal) Pos() int { return l.Tok.Pos }
func (l *Literal) String() string {
	if l.Val.Kind() == KindString {
		return "'" + l.Val.Format() + "'"
	}
	return l.Val.Format()
}

// Identifier is a bare name, resolved at evaluation time against the
// template variables (providers).
type Identifier struct {
	Tok  Token
	Name string
}

func (i *Identifier) Pos() int       { return i.Tok.Pos }
func (i *Identifier) String() string { return i.Name }

// Call is a flat function call: numerify("###").
type Call struct {
	Tok  Token // the function name token
	Name string
	Args []Node
}

func (c *Call) Pos() int { return c.Tok.Pos }
func (c *Call) String() string {
	return c.Name + "(" + joinNodes(c.Args) + ")"
}

// MemberCall is a namespaced call: Number.between(1, 10).
type MemberCall struct {
	Tok      Token // the receiver name token
	Receiver string
	Method   string
	Args     []Node
}

func (m *MemberCall) Pos() int { return m.Tok.Pos }
func (m *MemberCall) String() string {
	return m.Receiver + "." + m.Method + "(" + joinNodes(m.Args) + ")"
}

// ListLit is a bracketed argument list: [['a', 1], ['b', 2]].
type ListLit struct {
	Tok   Token // the '[' token
	Elems []Node
}

func (l *ListLit) Pos() int { return l.Tok.Pos }
func (l *ListLit) String() string {
	return "[" + joinNodes(l.Elems) + "]"
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
