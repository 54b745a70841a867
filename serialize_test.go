package fjson

import (
	"errors"
	"math"
	"strings"
	"testing"
)

//------------------------------------------------------------------------------
// COMPACT OUTPUT
//------------------------------------------------------------------------------

func TestDumps_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected string
	}{
		{"Null", Null(), "null"},
		{"True", Bool(true), "true"},
		{"False", Bool(false), "false"},
		{"Int", Int(42), "42"},
		{"NegativeInt", Int(-123), "-123"},
		{"Zero", Int(0), "0"},
		{"MaxInt", Int(math.MaxInt64), "9223372036854775807"},
		{"MinInt", Int(math.MinInt64), "-9223372036854775808"},
		{"String", String("hello"), `"hello"`},
		{"EmptyString", String(""), `""`},
		{"StringWithQuote", String(`a"b`), `"a\"b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dumps(tt.value, 0)
			if err != nil {
				t.Fatalf("Dumps failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDumps_Floats(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Simple", 3.14, "3.14"},
		{"Half", 0.5, "0.5"},
		{"Negative", -1.25, "-1.25"},
		{"WholeNumberKeepsMarker", 2.0, "2.0"},
		{"NegativeWhole", -7.0, "-7.0"},
		{"LargeExponent", 1e100, "1e+100"},
		{"SmallExponent", -4.56e-7, "-4.56e-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dumps(Float(tt.value), 0)
			if err != nil {
				t.Fatalf("Dumps failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDumps_NonFiniteFloat(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Dumps(Float(f), 0); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Dumps(%v): got %v, want ErrUnsupportedType", f, err)
		}
	}
}

func TestDumps_Containers(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected string
	}{
		{"EmptyArray", NewArray(), "[]"},
		{"EmptyObject", NewObject(), "{}"},
		{"Array", NewArray(Int(1), Int(2), Int(3)), "[1,2,3]"},
		{"MixedArray", NewArray(Int(1), Null(), Bool(true)), "[1,null,true]"},
		{
			"Object",
			NewObject().Set("a", Int(1)).Set("b", Int(2)),
			`{"a":1,"b":2}`,
		},
		{
			"Nested",
			NewObject().Set("x", NewArray(Int(1), Null(), Bool(true))),
			`{"x":[1,null,true]}`,
		},
		{
			"EscapedKey",
			NewObject().Set("a\nb", Int(1)),
			`{"a\nb":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dumps(tt.value, 0)
			if err != nil {
				t.Fatalf("Dumps failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDumps_ObjectKeyOrder(t *testing.T) {
	obj := NewObject().Set("z", Int(1)).Set("a", Int(2)).Set("m", Int(3))
	got, err := Dumps(obj, 0)
	if err != nil {
		t.Fatalf("Dumps failed: %v", err)
	}
	if got != `{"z":1,"a":2,"m":3}` {
		t.Errorf("insertion order not preserved: %q", got)
	}
}

func TestDumps_Set(t *testing.T) {
	set := NewSet(Int(1), Int(2), Int(3))
	got, err := Dumps(set, 0)
	if err != nil {
		t.Fatalf("Dumps failed: %v", err)
	}
	parsed, err := Loads(got)
	if err != nil {
		t.Fatalf("set output is not valid JSON: %v", err)
	}
	if parsed.Type() != TypeArray || parsed.Len() != 3 {
		t.Fatalf("set should serialize as a 3-element array, got %q", got)
	}
	// Element order is unspecified; compare as a multiset.
	want := NewSet(Int(3), Int(2), Int(1))
	have := NewSet(parsed.Items()...)
	if !have.Equal(want) {
		t.Errorf("decoded elements %q do not match input set", got)
	}
}

//------------------------------------------------------------------------------
// INDENT MODE
//------------------------------------------------------------------------------

func TestDumps_Indented(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		indent   int
		expected string
	}{
		{
			name:     "FlatObject",
			value:    NewObject().Set("a", Int(1)).Set("b", Int(2)),
			indent:   2,
			expected: "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:     "FlatArray",
			value:    NewArray(Int(1), Int(2), Int(3)),
			indent:   2,
			expected: "[\n  1,\n  2,\n  3\n]",
		},
		{
			name:     "NestedArrayInObject",
			value:    NewObject().Set("x", NewArray(Int(1), Null())),
			indent:   2,
			expected: "{\n  \"x\": [\n    1,\n    null\n  ]\n}",
		},
		{
			name:     "FourSpace",
			value:    NewArray(Bool(true)),
			indent:   4,
			expected: "[\n    true\n]",
		},
		{
			name:     "EmptyArray",
			value:    NewArray(),
			indent:   2,
			expected: "[\n]",
		},
		{
			name:     "EmptyObject",
			value:    NewObject(),
			indent:   2,
			expected: "{\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dumps(tt.value, tt.indent)
			if err != nil {
				t.Fatalf("Dumps failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDumps_IndentZeroIsCompact(t *testing.T) {
	v := NewObject().Set("a", NewArray(Int(1), Int(2)))
	got, err := Dumps(v, 0)
	if err != nil {
		t.Fatalf("Dumps failed: %v", err)
	}
	if strings.ContainsAny(got, " \n\t") {
		t.Errorf("compact output contains whitespace: %q", got)
	}
}

func TestDumps_InvalidIndent(t *testing.T) {
	if _, err := Dumps(Int(1), -1); !errors.Is(err, ErrInvalidIndent) {
		t.Errorf("got %v, want ErrInvalidIndent", err)
	}
}

func TestDumps_IndentTooLarge(t *testing.T) {
	if _, err := Dumps(NewArray(Int(1)), 300); !errors.Is(err, ErrIndentTooLarge) {
		t.Errorf("got %v, want ErrIndentTooLarge", err)
	}

	// Deep nesting pushes level*indent past the cap as well.
	v := NewArray(Int(1))
	for i := 0; i < 200; i++ {
		v = NewArray(v)
	}
	if _, err := Dumps(v, 2); !errors.Is(err, ErrIndentTooLarge) {
		t.Errorf("deep nesting: got %v, want ErrIndentTooLarge", err)
	}
}

//------------------------------------------------------------------------------
// HARDENING
//------------------------------------------------------------------------------

func TestDumps_DepthExceeded(t *testing.T) {
	v := Int(1)
	for i := 0; i < 12; i++ {
		v = NewArray(v)
	}
	_, err := DumpsWithOptions(v, &Options{MaxDepth: 10})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("got %v, want ErrDepthExceeded", err)
	}
	if _, err := DumpsWithOptions(v, &Options{MaxDepth: 100}); err != nil {
		t.Errorf("within limit: unexpected error %v", err)
	}
}

func TestDumps_CircularReference(t *testing.T) {
	arr := NewArray(Int(1))
	arr.Append(arr)
	if _, err := Dumps(arr, 0); !errors.Is(err, ErrCircularReference) {
		t.Errorf("self-referential array: got %v, want ErrCircularReference", err)
	}

	a := NewObject()
	b := NewObject().Set("a", a)
	a.Set("b", b)
	if _, err := Dumps(a, 0); !errors.Is(err, ErrCircularReference) {
		t.Errorf("indirect cycle: got %v, want ErrCircularReference", err)
	}
}

func TestDumps_SharedSubtreeIsNotACycle(t *testing.T) {
	inner := NewArray(Int(1))
	outer := NewArray(inner, inner)
	got, err := Dumps(outer, 0)
	if err != nil {
		t.Fatalf("diamond sharing rejected: %v", err)
	}
	if got != "[[1],[1]]" {
		t.Errorf("got %q, want [[1],[1]]", got)
	}
}

func TestDumps_NonStringKey(t *testing.T) {
	v, err := FromGo(map[int]string{1: "x"})
	if !errors.Is(err, ErrNonStringKey) {
		t.Fatalf("FromGo(map[int]string): got %v, want ErrNonStringKey", err)
	}
	if v != nil {
		t.Errorf("failed conversion returned a value")
	}
}

func TestDumps_UnsupportedType(t *testing.T) {
	if _, err := FromGo(make(chan int)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("got %v, want ErrUnsupportedType", err)
	}
	if _, err := Dumps(nil, 0); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("nil value: got %v, want ErrUnsupportedType", err)
	}
}
