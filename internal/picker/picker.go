// Package picker merges discovered columns with a saved selection into what
// the column picker shows.
package picker

import (
	"fmt"

	"crmcols/internal/column"
	"crmcols/internal/common"
	"crmcols/internal/diagnostic"
	"crmcols/internal/match"
	"crmcols/internal/naming"
	"crmcols/internal/registry"
)

// maxSuggestions caps the replacement keys offered per stale column.
const maxSuggestions = 3

// Stale is a saved column whose key the current sample no longer has.
type Stale struct {
	column.SelectedColumn
	Suggestions []string
}

// Picker is the merged view.
type Picker struct {
	// Selected is the saved selection refreshed from the available columns,
	// or the defaults when nothing usable was saved.
	Selected  column.Selection
	Defaulted bool
	Available []column.Column
	Groups    []registry.Group
	Stale     []Stale

	Diagnostics diagnostic.Diagnostics
}

// Build merges available, in registry order, with saved. Saved entries take
// their name and flags from the available column with the same key and keep
// their custom name. primary is the entity's primary field list used for
// defaults.
func Build(available []column.Column, saved column.Selection, primary []string) Picker {
	p := Picker{
		Available: available,
		Groups:    registry.Groups(available, groupLabel(available)),
	}

	byKey := make(map[string]column.Column, len(available))
	keys := make([]string, 0, len(available))
	for _, c := range available {
		byKey[c.Key] = c
		keys = append(keys, c.Key)
	}

	for _, s := range saved.Dedup() {
		c, ok := byKey[s.Key]
		if !ok {
			st := Stale{SelectedColumn: s, Suggestions: match.Suggest(s.Key, keys, maxSuggestions)}
			p.Stale = append(p.Stale, st)
			p.Diagnostics.AddWarning(diagnostic.CodeStaleSelection,
				fmt.Sprintf("saved column %q is not in the sample", s.Label()), "", s.Key, st.Suggestions...)
			continue
		}
		p.Selected = append(p.Selected, column.SelectedColumn{Column: c, CustomName: s.CustomName})
	}

	if common.IsEmpty(p.Selected) {
		p.Selected = Defaults(available, primary)
		p.Defaulted = true
	}

	return p
}

// Defaults selects id, name and the primary fields that are available, in
// that order.
func Defaults(available []column.Column, primary []string) column.Selection {
	byKey := make(map[string]column.Column, len(available))
	for _, c := range available {
		byKey[c.Key] = c
	}

	var sel column.Selection
	for _, k := range append([]string{"id", "name"}, primary...) {
		if c, ok := byKey[k]; ok {
			sel = sel.Add(c)
		}
	}
	return sel
}

// Unselected returns the available columns not in Selected, in order.
func (p Picker) Unselected() []column.Column {
	var out []column.Column
	for _, c := range p.Available {
		if !p.Selected.Contains(c.Key) {
			out = append(out, c)
		}
	}
	return out
}

// groupLabel names a group after its parent column, or after the parent key
// when the parent itself is not a column.
func groupLabel(available []column.Column) func(string) string {
	names := make(map[string]string, len(available))
	for _, c := range available {
		names[c.Key] = c.Name
	}
	return func(parentKey string) string {
		if name, ok := names[parentKey]; ok {
			return name
		}
		return naming.Title(parentKey)
	}
}
