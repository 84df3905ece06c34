package expr

// TokenType identifies a lexical token class.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT  // function and provider names
	INT    // 42, -7
	FLOAT  // 3.14, -0.5
	STRING // 'abc', "abc"
	TRUE   // true
	FALSE  // false

	// Delimiters
	COMMA    // ,
	DOT      // .
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
)

// Token is a lexed token with its byte offset into the source.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
}

func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case COMMA:
		return ","
	case DOT:
		return "."
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACKET:
		return "["
	case RBRACKET:
		return "]"
	default:
		return "UNKNOWN"
	}
}
