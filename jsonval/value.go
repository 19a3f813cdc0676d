// Package jsonval models an untyped JSON tree as a tagged variant.
//
// Objects keep the key order of the source document, which matters to callers
// that enumerate a sample record and expect the CRM's own field order.
package jsonval

import (
	"strconv"
)

// Value is one node of a JSON tree. The zero Value is Undefined.
type Value struct {
	kind   KindEnum
	b      bool
	num    float64
	raw    string // textual form of numbers and strings
	items  []Value
	fields []Field
}

// Field is one key of an object, in source order.
type Field struct {
	Key   string
	Value Value
}

func Null() Value { return Value{kind: KindNull} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func String(s string) Value { return Value{kind: KindString, raw: s} }
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Number builds a number node. The textual form is the shortest
// representation of f.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Object builds an object node; duplicate keys keep the last value at the
// position of the first occurrence.
func Object(fields ...Field) Value {
	out := Value{kind: KindObject}
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Key]; ok {
			out.fields[i].Value = f.Value
			continue
		}
		index[f.Key] = len(out.fields)
		out.fields = append(out.fields, f)
	}
	return out
}

// F is shorthand for building object fields.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

func (v Value) Kind() KindEnum { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) IsObject() bool { return v.kind == KindObject }
func (v Value) IsArray() bool { return v.kind == KindArray }
func (v Value) IsScalar() bool { return v.kind.IsScalar() }
func (v Value) Exists() bool { return v.kind != KindUndefined }
func (v Value) Fields() []Field { return v.fields }
func (v Value) Items() []Value { return v.items }
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Get returns the value stored under key of an object node.
func (v Value) Get(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether an object node carries key, whatever its value.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Str returns the string content of a string node, the textual form of a
// number or bool, and "" for anything else.
func (v Value) Str() string {
	switch v.kind {
	case KindString, KindNumber:
		return v.raw
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// BoolValue returns the content of a bool node and whether it was one.
func (v Value) BoolValue() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) Float() float64 { return v.num }
