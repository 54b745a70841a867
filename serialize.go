package fjson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultMaxDepth is the nesting limit applied by Dumps and Loads
	// when no Options override it.
	DefaultMaxDepth = 1000

	// maxIndentWidth caps the per-line indentation in bytes.
	maxIndentWidth = 256

	initialBufferSize = 1024
)

// serializer renders a Value tree into its buffer. Indentation is
// active only when indent > 0; onPath tracks the containers open on the
// current recursion path for cycle detection.
type serializer struct {
	buf      *buffer
	indent   int
	maxDepth int
	onPath   map[*Value]struct{}
}

func serialize(v *Value, indent, maxDepth int) (*buffer, error) {
	if indent < 0 {
		return nil, ErrInvalidIndent
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	s := &serializer{
		buf:      newBuffer(initialBufferSize),
		indent:   indent,
		maxDepth: maxDepth,
	}
	if err := s.value(v, 0); err != nil {
		return nil, err
	}
	return s.buf, nil
}

func (s *serializer) value(v *Value, level int) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}
	switch v.typ {
	case TypeNull:
		s.buf.appendString("null")
		return nil
	case TypeBool:
		if v.b {
			s.buf.appendString("true")
		} else {
			s.buf.appendString("false")
		}
		return nil
	case TypeInt:
		var scratch [20]byte
		s.buf.appendBytes(strconv.AppendInt(scratch[:0], v.i, 10))
		return nil
	case TypeFloat:
		return s.float(v.f)
	case TypeString:
		appendEscaped(s.buf, v.s)
		return nil
	case TypeArray, TypeSet:
		return s.sequence(v, level)
	case TypeObject:
		return s.object(v, level)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.typ)
	}
}

// float writes the shortest decimal text that round-trips to the same
// double. When that form carries neither a fraction nor an exponent a
// ".0" is appended so the text re-parses as a float, not an integer.
func (s *serializer) float(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite float %v", ErrUnsupportedType, f)
	}
	var scratch [32]byte
	text := strconv.AppendFloat(scratch[:0], f, 'g', -1, 64)
	s.buf.appendBytes(text)
	if !hasFloatMarker(text) {
		s.buf.appendString(".0")
	}
	return nil
}

func hasFloatMarker(text []byte) bool {
	for _, c := range text {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

func (s *serializer) sequence(v *Value, level int) error {
	if err := s.enter(v, level); err != nil {
		return err
	}
	defer delete(s.onPath, v)

	s.buf.appendByte('[')
	if s.indent > 0 {
		s.buf.appendByte('\n')
	}
	for i, item := range v.items {
		if err := s.appendIndent(level + 1); err != nil {
			return err
		}
		if err := s.value(item, level+1); err != nil {
			return err
		}
		if i < len(v.items)-1 {
			s.buf.appendByte(',')
		}
		if s.indent > 0 {
			s.buf.appendByte('\n')
		}
	}
	if err := s.appendIndent(level); err != nil {
		return err
	}
	s.buf.appendByte(']')
	return nil
}

func (s *serializer) object(v *Value, level int) error {
	if err := s.enter(v, level); err != nil {
		return err
	}
	defer delete(s.onPath, v)

	s.buf.appendByte('{')
	if s.indent > 0 {
		s.buf.appendByte('\n')
	}
	for i, m := range v.obj {
		if err := s.appendIndent(level + 1); err != nil {
			return err
		}
		appendEscaped(s.buf, m.key)
		s.buf.appendByte(':')
		if s.indent > 0 {
			s.buf.appendByte(' ')
		}
		if err := s.value(m.val, level+1); err != nil {
			return err
		}
		if i < len(v.obj)-1 {
			s.buf.appendByte(',')
		}
		if s.indent > 0 {
			s.buf.appendByte('\n')
		}
	}
	if err := s.appendIndent(level); err != nil {
		return err
	}
	s.buf.appendByte('}')
	return nil
}

// enter runs the checks shared by every container: nesting depth and
// revisit of a container already open on the recursion path.
func (s *serializer) enter(v *Value, level int) error {
	if level >= s.maxDepth {
		return ErrDepthExceeded
	}
	if s.onPath == nil {
		s.onPath = make(map[*Value]struct{})
	}
	if _, open := s.onPath[v]; open {
		return ErrCircularReference
	}
	s.onPath[v] = struct{}{}
	return nil
}

var indentSpaces = strings.Repeat(" ", maxIndentWidth)

// appendIndent writes level groups of indent spaces. A no-op in compact
// mode.
func (s *serializer) appendIndent(level int) error {
	if s.indent == 0 {
		return nil
	}
	width := level * s.indent
	if width >= maxIndentWidth {
		return ErrIndentTooLarge
	}
	s.buf.appendString(indentSpaces[:width])
	return nil
}
