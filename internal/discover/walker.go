package discover

import (
	"fmt"
	"strings"

	"crmcols/internal/column"
	"crmcols/internal/common"
	"crmcols/internal/diagnostic"
	"crmcols/internal/naming"
	"crmcols/jsonval"
)

const (
	customFieldsKey = "custom_fields"
	firstItemSuffix = " (First Item)"
)

// Accumulator carries everything a walk produces. It is threaded through
// recursive calls and returned, never shared.
type Accumulator struct {
	Columns     []column.Column
	Processed   map[string]struct{} // custom field paths already resolved
	Diagnostics diagnostic.Diagnostics
	Entity      string
}

// NewAccumulator returns an empty accumulator for entity.
func NewAccumulator(entity column.EntityType) Accumulator {
	return Accumulator{
		Processed: make(map[string]struct{}),
		Entity:    entity.String(),
	}
}

func (a Accumulator) emit(c column.Column) Accumulator {
	a.Columns = append(a.Columns, c)
	return a
}

// Walker emits raw columns for a record. Names are resolved while walking
// because nested labels are built from their parent's label.
type Walker struct {
	format *naming.Formatter
}

// NewWalker returns a walker naming columns with format.
func NewWalker(format *naming.Formatter) *Walker {
	if format == nil {
		format = naming.NewFormatter(nil)
	}
	return &Walker{format: format}
}

// Walk visits node, whose own path and display name are parentPath and
// parentName, and returns acc extended with the columns found below it.
func (w *Walker) Walk(node jsonval.Value, parentPath, parentName string, acc Accumulator) Accumulator {
	if !node.IsObject() {
		if parentPath == "" || !node.Exists() {
			return acc
		}
		return acc.emit(leaf(parentPath, parentName))
	}

	if parentPath == customFieldsKey {
		return w.customFields(node, acc)
	}

	for _, f := range node.Fields() {
		acc = w.visit(f.Key, f.Value, parentPath, parentName, acc)
	}

	return acc
}

func (w *Walker) visit(key string, v jsonval.Value, parentPath, parentName string, acc Accumulator) Accumulator {
	if key == "" || strings.HasPrefix(key, "_") || !v.Exists() {
		return acc
	}

	path := column.Join(parentPath, key)

	// The CRM's v1 payloads inline custom fields at the root.
	if parentPath == "" && IsCustomFieldKey(key) {
		return w.customField(key, path, parentPath, v, acc)
	}

	name := w.format.Format(path, key, parentName)

	switch v.Kind() {
	case jsonval.KindObject:
		if v.Len() == 0 {
			return acc.emit(nestedLeaf(path, name, parentPath))
		}
		return w.Walk(v, path, name, acc)
	case jsonval.KindArray:
		return w.walkArray(path, key, name, parentPath, v, acc)
	default:
		return acc.emit(nestedLeaf(path, name, parentPath))
	}
}

func (w *Walker) walkArray(path, key, name, parentPath string, v jsonval.Value, acc Accumulator) Accumulator {
	items := v.Items()
	first, ok := common.First(items)
	if !ok || !first.IsObject() {
		return acc.emit(nestedLeaf(path, name, parentPath))
	}

	if isContactArray(items) {
		return w.contactArray(path, name, items, acc)
	}

	if common.IsMultiple(items) {
		acc.Diagnostics.AddInfo(diagnostic.CodeArraySampled,
			fmt.Sprintf("only the first of %d items was sampled", len(items)), acc.Entity, path)
	}

	return w.Walk(first, column.Join(path, "0"), name+firstItemSuffix, acc)
}

func leaf(path, name string) column.Column {
	return nestedLeaf(path, name, column.Parent(path))
}

func nestedLeaf(path, name, parentPath string) column.Column {
	return column.Column{
		Key:       path,
		Name:      name,
		IsNested:  parentPath != "",
		ParentKey: parentPath,
	}
}
