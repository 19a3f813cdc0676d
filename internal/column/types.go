package column

// Column is one addressable, displayable field derived from a sample record.
type Column struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	IsNested  bool   `json:"isNested"`
	ParentKey string `json:"parentKey,omitempty"` // empty when the column is top-level
	ReadOnly  bool   `json:"readOnly"`
}

// SelectedColumn is a column the user picked, with an optional label
// override. Its position in a Selection is its display position.
type SelectedColumn struct {
	Column
	CustomName string `json:"customName,omitempty"`
}

// Label returns the custom name when set, the display name otherwise.
func (s SelectedColumn) Label() string {
	if s.CustomName != "" {
		return s.CustomName
	}
	return s.Name
}

// Select wraps columns as selected columns, in order.
func Select(cols ...Column) Selection {
	out := make(Selection, 0, len(cols))
	for _, c := range cols {
		out = append(out, SelectedColumn{Column: c})
	}
	return out
}

// Keys returns the keys of cols in order.
func Keys(cols []Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Key)
	}
	return out
}
