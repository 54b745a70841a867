// Package fjson converts generic Value trees to UTF-8 JSON text and
// back. The serializer renders into a doubling growable buffer with
// optional pretty-printing; the parser is a recursive-descent cursor
// over the input. Both sides enforce a configurable nesting limit, and
// the serializer rejects cyclic values instead of recursing forever.
//
// Created by dhawalhost (2025-10-14 09:12:41)
package fjson

import (
	"io"
	"unicode/utf8"
)

// Options configures a single serialize or parse call. The zero value
// means compact output and the default depth limit.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero produces
	// fully compact output with no inserted whitespace; negative is
	// rejected with ErrInvalidIndent.
	Indent int

	// MaxDepth bounds container nesting for both directions. Zero
	// selects DefaultMaxDepth.
	MaxDepth int
}

// Dumps serializes v to JSON text. indent is the number of spaces per
// nesting level; 0 selects compact output.
func Dumps(v *Value, indent int) (string, error) {
	return DumpsWithOptions(v, &Options{Indent: indent})
}

// Encode is an alias for Dumps.
func Encode(v *Value, indent int) (string, error) {
	return Dumps(v, indent)
}

// DumpsWithOptions serializes v with explicit options.
func DumpsWithOptions(v *Value, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	buf, err := serialize(v, opts.Indent, opts.MaxDepth)
	if err != nil {
		return "", err
	}
	return buf.string(), nil
}

// Loads parses JSON text into a Value. Exactly one top-level value is
// accepted; trailing non-whitespace fails with ErrTrailingData.
func Loads(text string) (*Value, error) {
	return LoadsWithOptions(text, nil)
}

// LoadsWithOptions parses JSON text with explicit options. Indent is
// ignored on the parse side.
func LoadsWithOptions(text string, opts *Options) (*Value, error) {
	if opts == nil {
		opts = &Options{}
	}
	return parse([]byte(text), opts.MaxDepth)
}

// Dump serializes v and writes the text to w.
func Dump(v *Value, w io.Writer, indent int) error {
	buf, err := serialize(v, indent, 0)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.bytes())
	return err
}

// Load reads all of r and parses the content as JSON. The source must
// yield UTF-8 text; anything else fails with ErrNotText.
func Load(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}
	return parse(data, 0)
}
