package registry

import (
	"cmp"
	"slices"

	"crmcols/internal/column"
)

// DefaultPrimaryFields are the entity-specific fields listed right after id
// and name, in this order.
var DefaultPrimaryFields = map[column.EntityType][]string{
	column.EntityDeals: {
		"title", "status", "value", "currency",
		"org_id", "person_id", "pipeline_id", "stage_id",
	},
	column.EntityPersons: {
		"first_name", "last_name", "email", "phone", "org_id", "owner_id",
	},
	column.EntityOrganizations: {
		"address", "owner_id", "people_count", "open_deals_count",
	},
	column.EntityActivities: {
		"subject", "type", "due_date", "due_time", "duration", "done",
		"deal_id", "person_id", "org_id", "user_id",
	},
	column.EntityLeads: {
		"title", "value", "owner_id", "person_id", "organization_id",
		"expected_close_date", "label_ids",
	},
	column.EntityProducts: {
		"code", "unit", "tax", "prices", "active_flag", "selectable",
	},
}

// contactGroups are nested groups ordered ahead of every other group.
var contactGroups = []string{"email", "phone"}

// sorter holds the precomputed ranks for one sort.
type sorter struct {
	primary map[string]int
}

func newSorter(primary []string) sorter {
	rank := make(map[string]int, len(primary))
	for i, k := range primary {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}
	return sorter{primary: rank}
}

// headRank places id, name and the primary fields; everything else shares
// the last rank.
func (s sorter) headRank(c column.Column) int {
	switch c.Key {
	case "id":
		return 0
	case "name":
		return 1
	}
	if r, ok := s.primary[c.Key]; ok {
		return 2 + r
	}
	return 2 + len(s.primary)
}

func groupRank(c column.Column) int {
	if !c.IsNested {
		return 0
	}
	root := column.Root(c.ParentKey)
	for i, g := range contactGroups {
		if root == g {
			return 1 + i
		}
	}
	return 1 + len(contactGroups)
}

func (s sorter) compare(a, b column.Column) int {
	if c := cmp.Compare(s.headRank(a), s.headRank(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(groupRank(a), groupRank(b)); c != 0 {
		return c
	}
	if a.IsNested && b.IsNested {
		if c := cmp.Compare(a.ParentKey, b.ParentKey); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// Sort orders cols in place by the registry's total order.
func Sort(cols []column.Column, primary []string) {
	s := newSorter(primary)
	slices.SortStableFunc(cols, s.compare)
}

// MainFieldsGroup is the label of the group of top-level columns.
const MainFieldsGroup = "Main Fields"

// Group is a run of columns sharing a parent, in registry order.
type Group struct {
	Name      string
	ParentKey string
	Columns   []column.Column
}

// Groups splits an ordered column list into the picker's groups: one for
// every top-level column, then one per parent key in first-seen order. Group
// labels come from the parent column's name when it exists, otherwise from
// the parent key's segments.
func Groups(cols []column.Column, label func(parentKey string) string) []Group {
	var groups []Group
	pos := make(map[string]int)

	for _, c := range cols {
		parent := ""
		if c.IsNested {
			parent = c.ParentKey
		}

		i, ok := pos[parent]
		if !ok {
			name := MainFieldsGroup
			if parent != "" {
				name = label(parent)
			}
			i = len(groups)
			pos[parent] = i
			groups = append(groups, Group{Name: name, ParentKey: parent})
		}
		groups[i].Columns = append(groups[i].Columns, c)
	}

	return groups
}
