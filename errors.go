package fjson

import (
	"errors"
	"fmt"
)

// Serialization error definitions
var (
	ErrInvalidIndent     = errors.New("indent size cannot be negative")
	ErrIndentTooLarge    = errors.New("indentation level too large")
	ErrUnsupportedType   = errors.New("value of unsupported type")
	ErrNonStringKey      = errors.New("only string keys are allowed in JSON objects")
	ErrCircularReference = errors.New("circular reference detected")
)

// Parse error definitions
var (
	ErrUnexpectedEnd        = errors.New("unexpected end of JSON")
	ErrInvalidToken         = errors.New("invalid JSON token")
	ErrInvalidEscape        = errors.New("invalid escape sequence")
	ErrInvalidUnicodeEscape = errors.New("invalid unicode escape")
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrUnterminatedArray    = errors.New("unterminated array")
	ErrUnterminatedObject   = errors.New("unterminated object")
	ErrInvalidInteger       = errors.New("invalid integer")
	ErrInvalidFloat         = errors.New("invalid float")
	ErrExpectedColon        = errors.New("expected ':' after object key")
	ErrExpectedCommaOrClose = errors.New("expected ',' or closing bracket")
	ErrTrailingData         = errors.New("extra data after JSON value")
)

// Errors shared by Dumps/Loads and the path helpers
var (
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	ErrNotText       = errors.New("source must contain UTF-8 text")
	ErrPathNotFound  = errors.New("path does not exist")
)

// SyntaxError reports a parse failure together with the byte offset at
// which it was detected.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
