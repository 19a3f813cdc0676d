package jsonval

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse for input gjson rejects.
var ErrInvalidJSON = errors.New("invalid json")

// Parse decodes raw JSON into a Value, preserving object key order.
func Parse(raw []byte) (Value, error) {
	if !gjson.ValidBytes(raw) {
		return Value{}, ErrInvalidJSON
	}
	return FromResult(gjson.ParseBytes(raw)), nil
}

// ParseString is Parse for string input.
func ParseString(raw string) (Value, error) {
	return Parse([]byte(raw))
}

// FromResult converts a gjson result tree.
func FromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Value{kind: KindNumber, num: r.Num, raw: r.Raw}
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			out := Value{kind: KindArray, items: []Value{}}
			r.ForEach(func(_, item gjson.Result) bool {
				out.items = append(out.items, FromResult(item))
				return true
			})
			return out
		}
		var fields []Field
		r.ForEach(func(key, item gjson.Result) bool {
			fields = append(fields, Field{Key: key.Str, Value: FromResult(item)})
			return true
		})
		return Object(fields...)
	default:
		return Value{}
	}
}

// FromAny converts a decoded Go tree (map[string]any, []any and scalars, as
// produced by encoding/json or yaml). Map keys have no order, so they are
// sorted to keep the result deterministic. Values with no JSON form, such as
// funcs and channels, become Undefined.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Value{kind: KindNumber, num: float64(t), raw: strconv.Itoa(t)}
	case int64:
		return Value{kind: KindNumber, num: float64(t), raw: strconv.FormatInt(t, 10)}
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: FromAny(t[k])})
		}
		return Object(fields...)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, num: float64(rv.Int()), raw: strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{kind: KindNumber, num: float64(rv.Uint()), raw: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Slice, reflect.Array:
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, FromAny(rv.Index(i).Interface()))
		}
		return Array(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(m)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	default:
		return Value{}
	}
}

// GoString renders the value as compact JSON-like text for logs.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool, KindNumber:
		return v.Str()
	case KindString:
		return strconv.Quote(v.raw)
	case KindArray:
		return fmt.Sprintf("array(%d)", len(v.items))
	case KindObject:
		return fmt.Sprintf("object(%d)", len(v.fields))
	default:
		return "undefined"
	}
}
