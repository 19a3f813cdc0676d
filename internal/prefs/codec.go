package prefs

import (
	"encoding/json"
	"fmt"

	"crmcols/internal/column"
)

// storedColumn is the persisted shape of one selected column. parentKey is
// null for top-level columns.
type storedColumn struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	CustomName string  `json:"customName"`
	IsNested   bool    `json:"isNested"`
	ParentKey  *string `json:"parentKey"`
}

// Encode returns the persisted JSON of sel.
func Encode(sel column.Selection) ([]byte, error) {
	out := make([]storedColumn, 0, len(sel))
	for _, c := range sel {
		sc := storedColumn{
			Key:        c.Key,
			Name:       c.Name,
			CustomName: c.CustomName,
			IsNested:   c.IsNested,
		}
		if c.ParentKey != "" {
			parent := c.ParentKey
			sc.ParentKey = &parent
		}
		out = append(out, sc)
	}
	return json.Marshal(out)
}

// Decode parses a persisted record. Entries without a key are skipped.
func Decode(data []byte) (column.Selection, error) {
	var stored []storedColumn
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode column preferences: %w", err)
	}

	sel := make(column.Selection, 0, len(stored))
	for _, sc := range stored {
		if sc.Key == "" {
			continue
		}
		c := column.SelectedColumn{
			Column: column.Column{
				Key:      sc.Key,
				Name:     sc.Name,
				IsNested: sc.IsNested,
			},
			CustomName: sc.CustomName,
		}
		if sc.ParentKey != nil {
			c.ParentKey = *sc.ParentKey
		}
		sel = append(sel, c)
	}
	return sel, nil
}
