package fjson

// Type identifies the variant held by a Value.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
	TypeSet
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeSet:
		return "set"
	default:
		return "unknown"
	}
}

// member is one object entry. Objects keep their entries in insertion
// order; index maps keys back to positions in the slice.
type member struct {
	key string
	val *Value
}

// Value is the in-memory representation of a JSON datum. A Value holds
// exactly one variant, identified by its Type. The zero Value is null.
//
// TypeSet is accepted as serializer input only: it renders as a JSON
// array with unspecified element order and is never produced by Loads.
type Value struct {
	typ   Type
	b     bool
	i     int64
	f     float64
	s     string
	items []*Value       // TypeArray, TypeSet
	obj   []member       // TypeObject: ordered entries
	index map[string]int // TypeObject: key -> position in obj
}

//------------------------------------------------------------------------------
// CONSTRUCTORS
//------------------------------------------------------------------------------

// Null returns the null value.
func Null() *Value { return &Value{typ: TypeNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{typ: TypeBool, b: b} }

// Int returns a 64-bit integer value.
func Int(n int64) *Value { return &Value{typ: TypeInt, i: n} }

// Float returns a double-precision float value.
func Float(f float64) *Value { return &Value{typ: TypeFloat, f: f} }

// String returns a string value. The text must be valid UTF-8.
func String(s string) *Value { return &Value{typ: TypeString, s: s} }

// NewArray returns an array holding the given items in order.
func NewArray(items ...*Value) *Value {
	return &Value{typ: TypeArray, items: items}
}

// NewSet returns a set holding the given items. Sets serialize as JSON
// arrays with unspecified element order and are never produced by the
// parser.
func NewSet(items ...*Value) *Value {
	return &Value{typ: TypeSet, items: items}
}

// NewObject returns an empty object. Entries are added with Set and keep
// insertion order.
func NewObject() *Value {
	return &Value{typ: TypeObject, index: make(map[string]int)}
}

//------------------------------------------------------------------------------
// ACCESSORS
//------------------------------------------------------------------------------

// Type reports which variant the value holds.
func (v *Value) Type() Type { return v.typ }

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.typ == TypeNull }

// Bool returns the boolean payload; false for other variants.
func (v *Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 for other variants.
func (v *Value) Int() int64 { return v.i }

// Float returns the float payload. For TypeInt the integer is widened,
// so numeric callers need not switch on the exact variant.
func (v *Value) Float() float64 {
	if v.typ == TypeInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the string payload; "" for other variants.
func (v *Value) Str() string { return v.s }

// Len returns the number of elements in an array, set or object, and 0
// for scalar variants.
func (v *Value) Len() int {
	if v.typ == TypeObject {
		return len(v.obj)
	}
	return len(v.items)
}

// Items returns the elements of an array or set. The returned slice is
// the value's backing store; callers must not reorder object members
// through it.
func (v *Value) Items() []*Value { return v.items }

// Index returns the i-th element of an array or set, or nil when out of
// range.
func (v *Value) Index(i int) *Value {
	if i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Append adds items to the end of an array or set and returns the value
// for chaining. It is a no-op for other variants.
func (v *Value) Append(items ...*Value) *Value {
	if v.typ == TypeArray || v.typ == TypeSet {
		v.items = append(v.items, items...)
	}
	return v
}

// Keys returns an object's keys in insertion order.
func (v *Value) Keys() []string {
	if v.typ != TypeObject {
		return nil
	}
	keys := make([]string, len(v.obj))
	for i, m := range v.obj {
		keys[i] = m.key
	}
	return keys
}

// Get returns the value stored under key in an object, or nil when the
// key is absent or the value is not an object.
func (v *Value) Get(key string) *Value {
	if v.typ != TypeObject {
		return nil
	}
	if i, ok := v.index[key]; ok {
		return v.obj[i].val
	}
	return nil
}

// Set stores val under key in an object and returns the value for
// chaining. A duplicate key overwrites the earlier entry in place, so
// the key keeps its original position. No-op for other variants.
func (v *Value) Set(key string, val *Value) *Value {
	if v.typ != TypeObject {
		return v
	}
	if i, ok := v.index[key]; ok {
		v.obj[i].val = val
		return v
	}
	v.index[key] = len(v.obj)
	v.obj = append(v.obj, member{key: key, val: val})
	return v
}

//------------------------------------------------------------------------------
// EQUALITY
//------------------------------------------------------------------------------

// Equal reports deep equality. Arrays compare element-wise in order,
// objects compare by key regardless of entry order, and sets compare as
// multisets. Int and Float never compare equal to each other.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == o.b
	case TypeInt:
		return v.i == o.i
	case TypeFloat:
		return v.f == o.f
	case TypeString:
		return v.s == o.s
	case TypeArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for _, m := range v.obj {
			ov := o.Get(m.key)
			if ov == nil || !m.val.Equal(ov) {
				return false
			}
		}
		return true
	case TypeSet:
		return multisetEqual(v.items, o.items)
	default:
		return false
	}
}

func multisetEqual(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for i, bv := range b {
			if !used[i] && av.Equal(bv) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
