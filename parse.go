package fjson

import "strconv"

// parser is a cursor over one immutable input slice. Each parse call
// owns its cursor exclusively; pos only moves forward.
type parser struct {
	data     []byte
	pos      int
	maxDepth int
}

func parse(data []byte, maxDepth int) (*Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{data: data, maxDepth: maxDepth}
	v, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.skipWhitespace() {
		return nil, p.errAt(ErrTrailingData, p.pos)
	}
	return v, nil
}

func (p *parser) errAt(err error, offset int) error {
	return &SyntaxError{Err: err, Offset: offset}
}

// skipWhitespace advances past ASCII whitespace and reports whether any
// input remains.
func (p *parser) skipWhitespace() bool {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return true
		}
	}
	return false
}

func (p *parser) peek() byte {
	if p.pos < len(p.data) {
		return p.data[p.pos]
	}
	return 0
}

func (p *parser) next() byte {
	c := p.data[p.pos]
	p.pos++
	return c
}

//------------------------------------------------------------------------------
// VALUE DISPATCH
//------------------------------------------------------------------------------

// value parses one grammar production. Each production commits once its
// leading token is recognized; there is no backtracking.
func (p *parser) value(depth int) (*Value, error) {
	if !p.skipWhitespace() {
		return nil, p.errAt(ErrUnexpectedEnd, p.pos)
	}
	switch c := p.peek(); {
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c >= '0' && c <= '9' || c == '-' || c == '+':
		return p.parseNumber()
	case c == 't':
		return p.literal("true", Bool(true))
	case c == 'f':
		return p.literal("false", Bool(false))
	case c == 'n':
		return p.literal("null", Null())
	default:
		return nil, p.errAt(ErrInvalidToken, p.pos)
	}
}

func (p *parser) literal(text string, v *Value) (*Value, error) {
	if p.pos+len(text) > len(p.data) || string(p.data[p.pos:p.pos+len(text)]) != text {
		return nil, p.errAt(ErrInvalidToken, p.pos)
	}
	p.pos += len(text)
	return v, nil
}

//------------------------------------------------------------------------------
// STRINGS
//------------------------------------------------------------------------------

// parseString consumes a quoted string literal, decoding the six short
// escapes, \/ and \uXXXX. Surrogate pairs are not recombined: each
// \uXXXX becomes its own 1-3 byte UTF-8 sequence.
func (p *parser) parseString() (string, error) {
	start := p.pos
	p.next() // opening quote
	buf := newBuffer(64)
	for p.pos < len(p.data) {
		c := p.next()
		if c == '"' {
			return buf.string(), nil
		}
		if c != '\\' {
			buf.appendByte(c)
			continue
		}
		if p.pos >= len(p.data) {
			return "", p.errAt(ErrUnterminatedString, start)
		}
		switch e := p.next(); e {
		case '"', '\\', '/':
			buf.appendByte(e)
		case 'b':
			buf.appendByte('\b')
		case 'f':
			buf.appendByte('\f')
		case 'n':
			buf.appendByte('\n')
		case 'r':
			buf.appendByte('\r')
		case 't':
			buf.appendByte('\t')
		case 'u':
			cp, err := p.hexEscape()
			if err != nil {
				return "", err
			}
			appendCodePoint(buf, cp)
		default:
			return "", p.errAt(ErrInvalidEscape, p.pos-1)
		}
	}
	return "", p.errAt(ErrUnterminatedString, start)
}

// hexEscape reads the four hex digits of a \uXXXX escape.
func (p *parser) hexEscape() (int, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errAt(ErrInvalidUnicodeEscape, p.pos)
	}
	cp := 0
	for i := 0; i < 4; i++ {
		d, ok := hexVal(p.data[p.pos+i])
		if !ok {
			return 0, p.errAt(ErrInvalidUnicodeEscape, p.pos+i)
		}
		cp = cp<<4 | d
	}
	p.pos += 4
	return cp, nil
}

//------------------------------------------------------------------------------
// NUMBERS
//------------------------------------------------------------------------------

// parseNumber greedily consumes the number character class and converts
// the text afterwards, so malformed shapes the scan accepts (doubled
// signs, bad exponents) surface as conversion errors.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	isFloat := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' || c == '-' || c == '+' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.pos++
			continue
		}
		break
	}
	text := string(p.data[start:p.pos])
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errAt(ErrInvalidFloat, start)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.errAt(ErrInvalidInteger, start)
	}
	return Int(n), nil
}

//------------------------------------------------------------------------------
// CONTAINERS
//------------------------------------------------------------------------------

func (p *parser) parseArray(depth int) (*Value, error) {
	if depth >= p.maxDepth {
		return nil, p.errAt(ErrDepthExceeded, p.pos)
	}
	start := p.pos
	p.next() // '['
	arr := NewArray()
	if !p.skipWhitespace() {
		return nil, p.errAt(ErrUnterminatedArray, start)
	}
	if p.peek() == ']' {
		p.next()
		return arr, nil
	}
	for {
		item, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(item)
		if !p.skipWhitespace() {
			return nil, p.errAt(ErrUnterminatedArray, start)
		}
		switch p.peek() {
		case ']':
			p.next()
			return arr, nil
		case ',':
			p.next()
			if !p.skipWhitespace() {
				return nil, p.errAt(ErrUnterminatedArray, start)
			}
		default:
			return nil, p.errAt(ErrExpectedCommaOrClose, p.pos)
		}
	}
}

func (p *parser) parseObject(depth int) (*Value, error) {
	if depth >= p.maxDepth {
		return nil, p.errAt(ErrDepthExceeded, p.pos)
	}
	start := p.pos
	p.next() // '{'
	obj := NewObject()
	if !p.skipWhitespace() {
		return nil, p.errAt(ErrUnterminatedObject, start)
	}
	if p.peek() == '}' {
		p.next()
		return obj, nil
	}
	for {
		if p.peek() != '"' {
			return nil, p.errAt(ErrNonStringKey, p.pos)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if !p.skipWhitespace() || p.peek() != ':' {
			return nil, p.errAt(ErrExpectedColon, p.pos)
		}
		p.next()
		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		// Duplicate keys overwrite the earlier value, keeping the
		// original entry position.
		obj.Set(key, val)
		if !p.skipWhitespace() {
			return nil, p.errAt(ErrUnterminatedObject, start)
		}
		switch p.peek() {
		case '}':
			p.next()
			return obj, nil
		case ',':
			p.next()
			if !p.skipWhitespace() {
				return nil, p.errAt(ErrUnterminatedObject, start)
			}
		default:
			return nil, p.errAt(ErrExpectedCommaOrClose, p.pos)
		}
	}
}
