package fjson

// Escape codec shared by the serializer and the parser: the encode side
// turns a string into a quoted JSON literal, the decode helpers turn
// escape sequences back into UTF-8 bytes.

const hexDigits = "0123456789abcdef"

// appendEscaped writes s as a quoted JSON string literal. The six short
// escapes cover backslash, quote and the common control characters; any
// other byte below 0x20, and DEL, becomes a lowercase \u00xx escape.
// Bytes >= 0x20 other than DEL are copied verbatim, including the lead
// and continuation bytes of multi-byte UTF-8 sequences: the Value model
// guarantees valid UTF-8 on input, so no re-validation happens here.
func appendEscaped(b *buffer, s string) {
	b.appendByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.appendString(`\\`)
		case '"':
			b.appendString(`\"`)
		case '\b':
			b.appendString(`\b`)
		case '\f':
			b.appendString(`\f`)
		case '\n':
			b.appendString(`\n`)
		case '\r':
			b.appendString(`\r`)
		case '\t':
			b.appendString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				b.appendString(`\u00`)
				b.appendByte(hexDigits[c>>4])
				b.appendByte(hexDigits[c&0xf])
			} else {
				b.appendByte(c)
			}
		}
	}
	b.appendByte('"')
}

// hexVal returns the value of an ASCII hex digit.
func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// appendCodePoint writes the UTF-8 encoding of a code point in the
// range U+0000..U+FFFF: one byte up to U+007F, two up to U+07FF, three
// otherwise. Surrogate halves are encoded like any other code point;
// pairs are not recombined, so astral characters written as two \uXXXX
// escapes decode to two three-byte surrogate encodings rather than one
// four-byte sequence.
func appendCodePoint(b *buffer, cp int) {
	switch {
	case cp <= 0x7f:
		b.appendByte(byte(cp))
	case cp <= 0x7ff:
		b.appendByte(byte(0xc0 | cp>>6))
		b.appendByte(byte(0x80 | cp&0x3f))
	default:
		b.appendByte(byte(0xe0 | cp>>12))
		b.appendByte(byte(0x80 | cp>>6&0x3f))
		b.appendByte(byte(0x80 | cp&0x3f))
	}
}
