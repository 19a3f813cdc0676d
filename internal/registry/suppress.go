package registry

import (
	"strings"

	"crmcols/internal/column"
)

// Suppression drops a column when a preferred sibling carries the same data.
type Suppression struct {
	Name string
	Drop func(c column.Column, idx *index) bool
}

type index struct {
	entity column.EntityType
	keys   map[string]struct{}
	roots  map[string]struct{}
}

func newIndex(entity column.EntityType, cols []column.Column) *index {
	idx := &index{
		entity: entity,
		keys:   make(map[string]struct{}, len(cols)),
		roots:  make(map[string]struct{}, len(cols)),
	}
	for _, c := range cols {
		idx.keys[c.Key] = struct{}{}
		idx.roots[column.Root(c.Key)] = struct{}{}
	}
	return idx
}

func (idx *index) has(key string) bool {
	_, ok := idx.keys[key]
	return ok
}

// hasRoot reports whether any column lives at or below root.
func (idx *index) hasRoot(root string) bool {
	_, ok := idx.roots[root]
	return ok
}

// embeddedReferences maps embedded entity objects to the reference field that
// supersedes them.
var embeddedReferences = map[string]string{
	"org":          "org_id",
	"organization": "org_id",
	"person":       "person_id",
	"owner":        "owner_id",
	"user":         "user_id",
	"creator_user": "creator_user_id",
	"deal":         "deal_id",
	"stage":        "stage_id",
	"pipeline":     "pipeline_id",
}

// DefaultSuppressions is the ordered suppression table.
func DefaultSuppressions() []Suppression {
	return []Suppression{
		{
			Name: "embedded-object",
			Drop: func(c column.Column, idx *index) bool {
				ref, ok := embeddedReferences[column.Root(c.Key)]
				return ok && idx.hasRoot(ref)
			},
		},
		{
			Name: "reference-name",
			Drop: func(c column.Column, idx *index) bool {
				// X.name loses to X_id.name
				segs := column.Segments(c.Key)
				if len(segs) != 2 || segs[1] != "name" {
					return false
				}
				return idx.has(segs[0] + "_id.name")
			},
		},
		{
			Name: "formatted-address",
			Drop: func(c column.Column, idx *index) bool {
				leaf := column.Leaf(c.Key)
				if leaf == "address" || !strings.Contains(leaf, "formatted_address") {
					return false
				}
				return idx.has(column.Join(column.Parent(c.Key), "address"))
			},
		},
		{
			Name: "denormalized-name",
			Drop: func(c column.Column, idx *index) bool {
				if c.IsNested {
					return false
				}
				base, ok := strings.CutSuffix(c.Key, "_name")
				if !ok || base == "" {
					return false
				}
				return idx.has(base + "_id.name")
			},
		},
		{
			Name: "self-reference",
			Drop: func(c column.Column, idx *index) bool {
				if !strings.Contains(c.Key, column.PathSep) {
					return false
				}
				root := column.Root(c.Key)
				for _, p := range idx.entity.Prefixes() {
					if p == root {
						return true
					}
				}
				return false
			},
		},
	}
}

// suppress filters cols and returns the survivors plus, for each dropped key,
// the name of the suppression that dropped it. The index is built once from
// the full input, so suppression never depends on evaluation order.
func suppress(entity column.EntityType, cols []column.Column, rules []Suppression) ([]column.Column, map[string]string) {
	idx := newIndex(entity, cols)
	out := make([]column.Column, 0, len(cols))
	dropped := make(map[string]string)

	for _, c := range cols {
		if name := firstDrop(c, idx, rules); name != "" {
			dropped[c.Key] = name
			continue
		}
		out = append(out, c)
	}

	return out, dropped
}

func firstDrop(c column.Column, idx *index, rules []Suppression) string {
	for _, r := range rules {
		if r.Drop(c, idx) {
			return r.Name
		}
	}
	return ""
}
