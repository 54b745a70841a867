package fjson

// Text-level formatting helpers for raw JSON documents. These operate
// on serialized text directly, without building a Value tree.

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/valyala/fastjson"
)

// FormatOptions contains formatting configuration for
// PrettyWithOptions.
type FormatOptions struct {
	Indent   string // indentation string, e.g. "  " or "\t"
	SortKeys bool   // sort object keys alphabetically
}

// Pretty reformats JSON text with 2-space indentation. The input is
// validated first; invalid documents are rejected rather than
// reformatted best-effort.
func Pretty(data []byte) ([]byte, error) {
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	return pretty.Pretty(data), nil
}

// PrettyWithOptions reformats JSON text with custom options. An empty
// indent minifies instead.
func PrettyWithOptions(data []byte, opts *FormatOptions) ([]byte, error) {
	if opts == nil || opts.Indent == "" {
		return Ugly(data)
	}
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	return pretty.PrettyOptions(data, &pretty.Options{
		Indent:   opts.Indent,
		SortKeys: opts.SortKeys,
	}), nil
}

// Ugly removes all whitespace outside string literals.
func Ugly(data []byte) ([]byte, error) {
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	return pretty.Ugly(data), nil
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	return fastjson.ValidateBytes(data) == nil
}
