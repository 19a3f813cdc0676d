package discover

import (
	"strings"

	"crmcols/internal/column"
	"crmcols/internal/naming"
	"crmcols/jsonval"
)

// isContactArray reports whether every element carries a "value" and a
// boolean "primary", as the CRM's multi-valued email and phone fields do.
func isContactArray(items []jsonval.Value) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.IsObject() || !item.Has("value") {
			return false
		}
		p, ok := item.Get("primary")
		if !ok {
			return false
		}
		if _, isBool := p.BoolValue(); !isBool {
			return false
		}
	}
	return true
}

// contactArray emits "P.0.value" as the primary entry, then one column per
// distinct label. Labels compare exactly after lower-casing; blank labels
// add nothing.
func (w *Walker) contactArray(path, name string, items []jsonval.Value, acc Accumulator) Accumulator {
	acc = acc.emit(column.Column{
		Key:       column.Join(path, "0.value"),
		Name:      "Primary " + name,
		IsNested:  true,
		ParentKey: path,
	})

	seen := make(map[string]struct{})
	for _, item := range items {
		lv, _ := item.Get("label")
		label := naming.NormalizeLabel(lv.Str())
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}

		acc = acc.emit(column.Column{
			Key:       column.Join(path, labelSegment(label)),
			Name:      name + " " + naming.Title(label),
			IsNested:  true,
			ParentKey: path,
		})
	}

	return acc
}

// labelSegment keeps a label usable as a single path segment.
func labelSegment(label string) string {
	return strings.ReplaceAll(label, column.PathSep, "_")
}
