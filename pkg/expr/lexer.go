package expr

import "strings"

// Lexer scans expression source byte by byte. Whitespace is insignificant
// outside string literals.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position (after current char)
	ch           byte // current char under examination
	err          *ParseError
}

// NewLexer returns a lexer over input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Err returns the first lexical error encountered, if any.
func (l *Lexer) Err() *ParseError {
	return l.err
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token in the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: l.position}

	switch l.ch {
	case ',':
		tok.Type, tok.Literal = COMMA, ","
	case '.':
		tok.Type, tok.Literal = DOT, "."
	case '(':
		tok.Type, tok.Literal = LPAREN, "("
	case ')':
		tok.Type, tok.Literal = RPAREN, ")"
	case '[':
		tok.Type, tok.Literal = LBRACKET, "["
	case ']':
		tok.Type, tok.Literal = RBRACKET, "]"
	case '\'', '"':
		lit, ok := l.readString(l.ch)
		if !ok {
			if l.err == nil {
				l.err = &ParseError{Offset: tok.Pos, Kind: UnterminatedString}
			}
			tok.Type, tok.Literal = ILLEGAL, lit
			return tok
		}
		tok.Type, tok.Literal = STRING, lit
		return tok
	case '-':
		if isDigit(l.peekChar()) {
			tok.Type, tok.Literal = l.readNumber()
			return tok
		}
		tok.Type, tok.Literal = ILLEGAL, "-"
	case 0:
		tok.Type, tok.Literal = EOF, ""
		return tok
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = lookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			tok.Type, tok.Literal = l.readNumber()
			return tok
		}
		tok.Type, tok.Literal = ILLEGAL, string(l.ch)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() (TokenType, string) {
	position := l.position
	tokenType := INT

	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return tokenType, l.input[position:l.position]
}

// readString consumes a quoted string, processing backslash escapes.
// The returned literal is the unescaped content without quotes. ok is
// false when the closing quote is missing.
func (l *Lexer) readString(quote byte) (lit string, ok bool) {
	var b strings.Builder
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return b.String(), false
		case quote:
			l.readChar() // consume closing quote
			return b.String(), true
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"':
				b.WriteByte(l.ch)
			case 0:
				return b.String(), false
			default:
				// Unknown escapes keep the backslash, so patterns like
				// regexify('\d') survive single-quoting.
				b.WriteByte('\\')
				b.WriteByte(l.ch)
			}
		default:
			b.WriteByte(l.ch)
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
