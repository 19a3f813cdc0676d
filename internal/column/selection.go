package column

import (
	"fmt"
	"slices"
)

// Selection is an ordered list of selected columns; insertion order is
// display order.
type Selection []SelectedColumn

// Keys returns the selected keys in display order.
func (s Selection) Keys() []string {
	out := make([]string, 0, len(s))
	for _, c := range s {
		out = append(out, c.Key)
	}
	return out
}

// Index returns the position of key, or -1.
func (s Selection) Index(key string) int {
	return slices.IndexFunc(s, func(c SelectedColumn) bool { return c.Key == key })
}

// Contains reports whether key is selected.
func (s Selection) Contains(key string) bool {
	return s.Index(key) >= 0
}

// Add appends col. Adding a key that is already selected is a no-op.
func (s Selection) Add(col Column) Selection {
	if s.Contains(col.Key) {
		return s
	}
	return append(s, SelectedColumn{Column: col})
}

// Remove drops key from the selection.
func (s Selection) Remove(key string) Selection {
	return slices.DeleteFunc(slices.Clone(s), func(c SelectedColumn) bool { return c.Key == key })
}

// Move places key at position to, shifting the others.
func (s Selection) Move(key string, to int) (Selection, error) {
	from := s.Index(key)
	if from < 0 {
		return s, fmt.Errorf("column %q is not selected", key)
	}

	if to < 0 || to >= len(s) {
		return s, fmt.Errorf("position %d out of range [0,%d)", to, len(s))
	}

	out := slices.Clone(s)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, item)

	return out, nil
}

// Rename sets the custom name of key; an empty name clears the override.
func (s Selection) Rename(key, customName string) (Selection, error) {
	i := s.Index(key)
	if i < 0 {
		return s, fmt.Errorf("column %q is not selected", key)
	}

	out := slices.Clone(s)
	out[i].CustomName = customName

	return out, nil
}

// Dedup keeps the first occurrence of each key.
func (s Selection) Dedup() Selection {
	seen := make(map[string]struct{}, len(s))
	out := make(Selection, 0, len(s))
	for _, c := range s {
		if _, ok := seen[c.Key]; ok {
			continue
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}
	return out
}
