package pattern

// printable is the universe for '.' and negated classes: ASCII 0x20..0x7E.
var printable = func() []rune {
	chars := make([]rune, 0, 95)
	for c := rune(0x20); c <= 0x7E; c++ {
		chars = append(chars, c)
	}
	return chars
}()

var (
	digitChars  = []rune("0123456789")
	wordChars   = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_")
	spaceChars  = []rune(" \t\n\r")
	nonDigit    = subtract(printable, digitChars)
	nonWord     = subtract(printable, wordChars)
	nonSpace    = subtract(printable, spaceChars)
)

type parser struct {
	src       []rune
	pos       int
	maxRepeat int
}

// parseAlternation parses a '|'-separated list of sequences. Inside a
// group it stops at ')', which the caller consumes.
func (p *parser) parseAlternation(inGroup bool) (node, error) {
	var branches []node
	for {
		seq, err := p.parseSequence(inGroup)
		if err != nil {
			return nil, err
		}
		branches = append(branches, seq)
		if p.pos < len(p.src) && p.src[p.pos] == '|' {
			p.pos++
			continue
		}
		break
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return &alternation{branches: branches}, nil
}

// parseSequence parses parts until '|', ')' (in a group), or end of input.
func (p *parser) parseSequence(inGroup bool) (node, error) {
	seq := &sequence{}
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch ch {
		case '|':
			return seq, nil
		case ')':
			if inGroup {
				return seq, nil
			}
			return nil, &Error{Position: p.pos, Reason: "unmatched ')'"}
		case '(':
			start := p.pos
			p.pos++
			group, err := p.parseAlternation(true)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != ')' {
				return nil, &Error{Position: start, Reason: "missing ')'"}
			}
			p.pos++
			seq.parts = append(seq.parts, group)
		case '[':
			cls, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			seq.parts = append(seq.parts, cls)
		case '?', '*', '+', '{':
			if err := p.parseQuantifier(seq); err != nil {
				return nil, err
			}
		case '.':
			p.pos++
			seq.parts = append(seq.parts, &class{chars: printable})
		case '\\':
			cls, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			seq.parts = append(seq.parts, cls)
		default:
			p.pos++
			seq.parts = append(seq.parts, &class{chars: []rune{ch}})
		}
	}
	return seq, nil
}

// parseEscape handles \d \w \s \D \W \S and literal escapes.
func (p *parser) parseEscape() (*class, error) {
	start := p.pos
	p.pos++ // consume backslash
	if p.pos >= len(p.src) {
		return nil, &Error{Position: start, Reason: "trailing backslash"}
	}
	ch := p.src[p.pos]
	p.pos++
	switch ch {
	case 'd':
		return &class{chars: digitChars}, nil
	case 'D':
		return &class{chars: nonDigit}, nil
	case 'w':
		return &class{chars: wordChars}, nil
	case 'W':
		return &class{chars: nonWord}, nil
	case 's':
		return &class{chars: spaceChars}, nil
	case 'S':
		return &class{chars: nonSpace}, nil
	case 'n':
		return &class{chars: []rune{'\n'}}, nil
	case 't':
		return &class{chars: []rune{'\t'}}, nil
	case 'r':
		return &class{chars: []rune{'\r'}}, nil
	default:
		return &class{chars: []rune{ch}}, nil
	}
}

// parseClass handles [abc], [a-z], and [^...] sets.
func (p *parser) parseClass() (*class, error) {
	start := p.pos
	p.pos++ // consume '['
	negated := false
	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		negated = true
		p.pos++
	}

	var chars []rune
	for p.pos < len(p.src) && p.src[p.pos] != ']' {
		ch := p.src[p.pos]
		if ch == '\\' {
			esc, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			chars = append(chars, esc.chars...)
			continue
		}
		// Range like a-z, unless '-' is the last set member.
		if p.pos+2 < len(p.src) && p.src[p.pos+1] == '-' && p.src[p.pos+2] != ']' {
			lo, hi := ch, p.src[p.pos+2]
			if lo > hi {
				return nil, &Error{Position: p.pos, Reason: "inverted character range"}
			}
			for c := lo; c <= hi; c++ {
				chars = append(chars, c)
			}
			p.pos += 3
			continue
		}
		chars = append(chars, ch)
		p.pos++
	}
	if p.pos >= len(p.src) {
		return nil, &Error{Position: start, Reason: "missing ']'"}
	}
	p.pos++ // consume ']'

	if len(chars) == 0 {
		return nil, &Error{Position: start, Reason: "empty character class"}
	}
	if negated {
		chars = subtract(printable, chars)
		if len(chars) == 0 {
			return nil, &Error{Position: start, Reason: "negated class covers all printable characters"}
		}
	}
	return &class{chars: chars}, nil
}

// parseQuantifier attaches ?, *, + or {n,m} to the preceding part.
func (p *parser) parseQuantifier(seq *sequence) error {
	start := p.pos
	if len(seq.parts) == 0 {
		return &Error{Position: start, Reason: "quantifier with nothing to repeat"}
	}
	last := seq.parts[len(seq.parts)-1]
	if _, ok := last.(*repeat); ok {
		return &Error{Position: start, Reason: "double quantifier"}
	}

	var min, max int
	switch p.src[p.pos] {
	case '?':
		min, max = 0, 1
		p.pos++
	case '*':
		min, max = 0, p.maxRepeat
		p.pos++
	case '+':
		min, max = 1, p.maxRepeat
		p.pos++
	case '{':
		var err error
		min, max, err = p.parseBounds()
		if err != nil {
			return err
		}
	}
	seq.parts[len(seq.parts)-1] = &repeat{child: last, min: min, max: max}
	return nil
}

// parseBounds parses {n}, {n,} and {n,m}.
func (p *parser) parseBounds() (min, max int, err error) {
	start := p.pos
	p.pos++ // consume '{'
	var bounds [2]int
	idx := 0
	sawDigit := false
	for p.pos < len(p.src) && p.src[p.pos] != '}' {
		ch := p.src[p.pos]
		switch {
		case ch == ',':
			if idx == 1 {
				return 0, 0, &Error{Position: p.pos, Reason: "extra comma in quantifier"}
			}
			idx = 1
			sawDigit = false
		case ch >= '0' && ch <= '9':
			bounds[idx] = bounds[idx]*10 + int(ch-'0')
			sawDigit = true
		default:
			return 0, 0, &Error{Position: p.pos, Reason: "digit expected in quantifier"}
		}
		p.pos++
	}
	if p.pos >= len(p.src) {
		return 0, 0, &Error{Position: start, Reason: "missing '}'"}
	}
	p.pos++ // consume '}'

	min = bounds[0]
	switch {
	case idx == 0:
		max = min // {n}
	case !sawDigit:
		max = min + p.maxRepeat // {n,}
	default:
		max = bounds[1] // {n,m}
	}
	if min > max {
		return 0, 0, &Error{Position: start, Reason: "min repeat exceeds max"}
	}
	return min, max, nil
}

// subtract returns universe minus exclude, preserving universe order.
func subtract(universe, exclude []rune) []rune {
	drop := make(map[rune]bool, len(exclude))
	for _, c := range exclude {
		drop[c] = true
	}
	var out []rune
	for _, c := range universe {
		if !drop[c] {
			out = append(out, c)
		}
	}
	return out
}
