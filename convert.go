package fjson

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// FromGo builds a Value from a native Go value: nil, bool, integer and
// float types, string, []any, and string-keyed maps. Map entries are
// added in sorted key order since Go map iteration order is undefined.
// Maps with a non-string key type fail with ErrNonStringKey; anything
// else unrecognized fails with ErrUnsupportedType.
func FromGo(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return uintValue(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return uintValue(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case []any:
		arr := NewArray()
		for _, item := range t {
			v, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func uintValue(u uint64) (*Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedType, u)
	}
	return Int(int64(u)), nil
}

// fromReflect covers concrete slice and map types that do not match the
// any-based cases, e.g. []int or map[string]string.
func fromReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			v, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrNonStringKey, rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromGo(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// ToGo converts a Value back to native Go types: nil, bool, int64,
// float64, string, []any and map[string]any. Object entry order is
// lost in the map. Sets come back as []any.
func (v *Value) ToGo() any {
	switch v.typ {
	case TypeNull:
		return nil
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeArray, TypeSet:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.ToGo()
		}
		return items
	case TypeObject:
		m := make(map[string]any, len(v.obj))
		for _, e := range v.obj {
			m[e.key] = e.val.ToGo()
		}
		return m
	default:
		return nil
	}
}
