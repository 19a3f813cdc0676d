package discover

import (
	"regexp"

	"crmcols/internal/column"
	"crmcols/internal/naming"
	"crmcols/jsonval"
)

// customFieldKeyRe matches the CRM's opaque custom field identifiers.
var customFieldKeyRe = regexp.MustCompile(`^[0-9a-fA-F]{20,}$`)

// IsCustomFieldKey reports whether key looks like a custom field hash.
func IsCustomFieldKey(key string) bool {
	return customFieldKeyRe.MatchString(key)
}

// FieldShape is the structure of a custom field value.
type FieldShape int

const (
	ShapeScalar FieldShape = iota
	ShapeCurrency
	ShapeRange
	ShapeAddress
	ShapeComplex
)

// ShapeOf classifies a custom field value. Scalars, null and arrays are all
// single columns.
func ShapeOf(v jsonval.Value) FieldShape {
	if !v.IsObject() {
		return ShapeScalar
	}
	if !v.Has("value") {
		return ShapeComplex
	}
	switch {
	case v.Has("currency"):
		return ShapeCurrency
	case v.Has("until"):
		return ShapeRange
	case v.Has("formatted_address"):
		return ShapeAddress
	default:
		return ShapeComplex
	}
}

// genericLabel names a hash-keyed field the field map does not know.
func (s FieldShape) genericLabel() string {
	switch s {
	case ShapeCurrency:
		return "Currency Field"
	case ShapeAddress:
		return "Address Field"
	case ShapeRange:
		return "Date Range Field"
	default:
		return "Custom Field"
	}
}

func (s FieldShape) suffix() string {
	switch s {
	case ShapeCurrency:
		return " (Currency)"
	case ShapeRange:
		return " (Range)"
	case ShapeAddress:
		return " (Address)"
	case ShapeComplex:
		return " (Complex)"
	default:
		return ""
	}
}

func (w *Walker) customFields(node jsonval.Value, acc Accumulator) Accumulator {
	for _, f := range node.Fields() {
		if f.Key == "" || !f.Value.Exists() {
			continue
		}
		acc = w.customField(f.Key, column.Join(customFieldsKey, f.Key), customFieldsKey, f.Value, acc)
	}
	return acc
}

// customFieldName picks the label by priority: field map, generic label for
// hash keys, formatted key.
func (w *Walker) customFieldName(path, key string, shape FieldShape) string {
	if name, ok := w.format.Lookup(path, key); ok {
		return name
	}
	if IsCustomFieldKey(key) {
		return shape.genericLabel()
	}
	return naming.Title(key)
}

func (w *Walker) customField(key, path, parentPath string, v jsonval.Value, acc Accumulator) Accumulator {
	if _, done := acc.Processed[path]; done {
		return acc
	}
	acc.Processed[path] = struct{}{}

	shape := ShapeOf(v)
	name := w.customFieldName(path, key, shape)

	acc = acc.emit(nestedLeaf(path, name+shape.suffix(), parentPath))

	switch shape {
	case ShapeAddress:
		acc = acc.emit(nestedLeaf(column.Join(path, "formatted_address"), name+" - Full Address", path))
		for _, ac := range naming.AddressComponents {
			if cv, ok := v.Get(ac.Key); ok && cv.Exists() && !cv.IsNull() {
				acc = acc.emit(nestedLeaf(column.Join(path, ac.Key), name+" - "+ac.Label, path))
			}
		}
	case ShapeComplex:
		acc = w.Walk(v, path, name, acc)
	}

	return acc
}
