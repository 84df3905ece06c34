package expr

import "strconv"

// Parser is a recursive-descent parser for the expression DSL. The
// grammar has no infix operators, so there is no precedence climbing:
//
//	expr    := call | literal | ident
//	call    := ident ( "." ident )? "(" [ arg { "," arg } ] ")"
//	arg     := expr | list
//	list    := "[" [ arg { "," arg } ] "]"
//	literal := number | string | "true" | "false"
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token
}

// NewParser returns a parser over the given lexer.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}
	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses input as a single expression.
func Parse(input string) (Node, error) {
	p := NewParser(NewLexer(input))
	return p.ParseExpression()
}

// ParseExpression parses one expression and requires the input to end
// there.
func (p *Parser) ParseExpression() (Node, error) {
	if p.curToken.Type == EOF {
		return nil, &ParseError{Offset: p.curToken.Pos, Kind: EmptyExpression}
	}
	node, err := p.parseArg()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != EOF {
		return nil, p.unexpected(p.curToken)
	}
	return node, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// parseArg parses an expression or a bracketed list.
func (p *Parser) parseArg() (Node, error) {
	switch p.curToken.Type {
	case LBRACKET:
		return p.parseList()
	case STRING:
		node := &Literal{Tok: p.curToken, Val: String(p.curToken.Literal)}
		p.nextToken()
		return node, nil
	case INT:
		i, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			return nil, p.unexpected(p.curToken)
		}
		node := &Literal{Tok: p.curToken, Val: Integer(i)}
		p.nextToken()
		return node, nil
	case FLOAT:
		f, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			return nil, p.unexpected(p.curToken)
		}
		node := &Literal{Tok: p.curToken, Val: Number(f)}
		p.nextToken()
		return node, nil
	case TRUE, FALSE:
		node := &Literal{Tok: p.curToken, Val: Bool(p.curToken.Type == TRUE)}
		p.nextToken()
		return node, nil
	case IDENT:
		return p.parseIdentOrCall()
	default:
		return nil, p.unexpected(p.curToken)
	}
}

// parseIdentOrCall parses a bare identifier, a call, or a member call.
func (p *Parser) parseIdentOrCall() (Node, error) {
	nameTok := p.curToken
	p.nextToken()

	var method string
	if p.curToken.Type == DOT {
		p.nextToken()
		if p.curToken.Type != IDENT {
			return nil, p.unexpected(p.curToken)
		}
		method = p.curToken.Literal
		p.nextToken()
	}

	if p.curToken.Type != LPAREN {
		if method != "" {
			// Member access without a call has no meaning in the DSL.
			return nil, p.unexpected(p.curToken)
		}
		return &Identifier{Tok: nameTok, Name: nameTok.Literal}, nil
	}

	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	if method != "" {
		return &MemberCall{Tok: nameTok, Receiver: nameTok.Literal, Method: method, Args: args}, nil
	}
	return &Call{Tok: nameTok, Name: nameTok.Literal, Args: args}, nil
}

// parseCallArgs parses "(" [ arg { "," arg } ] ")". The opening paren is
// the current token on entry; the closing paren is consumed.
func (p *Parser) parseCallArgs() ([]Node, error) {
	p.nextToken() // consume '('

	var args []Node
	if p.curToken.Type == RPAREN {
		p.nextToken()
		return args, nil
	}

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.curToken.Type {
		case COMMA:
			p.nextToken()
		case RPAREN:
			p.nextToken()
			return args, nil
		default:
			return nil, p.expectedCommaOrParen(p.curToken)
		}
	}
}

// parseList parses "[" [ arg { "," arg } ] "]".
func (p *Parser) parseList() (Node, error) {
	openTok := p.curToken
	p.nextToken() // consume '['

	list := &ListLit{Tok: openTok}
	if p.curToken.Type == RBRACKET {
		p.nextToken()
		return list, nil
	}

	for {
		elem, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		list.Elems = append(list.Elems, elem)

		switch p.curToken.Type {
		case COMMA:
			p.nextToken()
		case RBRACKET:
			p.nextToken()
			return list, nil
		default:
			return nil, p.expectedCommaOrParen(p.curToken)
		}
	}
}

func (p *Parser) unexpected(tok Token) error {
	if lexErr := p.l.Err(); lexErr != nil {
		return lexErr
	}
	detail := tok.Literal
	if tok.Type == EOF {
		detail = "end of input"
	}
	return &ParseError{Offset: tok.Pos, Kind: UnexpectedToken, Detail: detail}
}

func (p *Parser) expectedCommaOrParen(tok Token) error {
	if lexErr := p.l.Err(); lexErr != nil {
		return lexErr
	}
	return &ParseError{Offset: tok.Pos, Kind: ExpectedCommaOrParen, Detail: tok.Literal}
}
