package naming

import (
	"strings"

	"crmcols/internal/column"
)

// Rule marks a column editable or read-only when Match succeeds.
type Rule struct {
	Name     string
	ReadOnly bool
	Match    func(c column.Column, ctx *Context) bool
}

// Context is what rules may consult besides the column itself: the entity
// being viewed and the keys that survived suppression.
type Context struct {
	Entity column.EntityType
	keys   map[string]struct{}
}

// NewContext indexes the surviving columns.
func NewContext(entity column.EntityType, cols []column.Column) *Context {
	keys := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		keys[c.Key] = struct{}{}
	}
	return &Context{Entity: entity, keys: keys}
}

// Has reports whether a column with key survived.
func (ctx *Context) Has(key string) bool {
	_, ok := ctx.keys[key]
	return ok
}

var systemFields = map[string]struct{}{
	"id":              {},
	"creator_user_id": {},
	"company_id":      {},
	"cc_email":        {},
	"weighted_value":  {},
	"rotten_time":     {},
	"origin":          {},
	"origin_id":       {},
	"channel_id":      {},
	"source_name":     {},
}

var timestampFields = map[string]struct{}{
	"add_time":                {},
	"update_time":             {},
	"stage_change_time":       {},
	"won_time":                {},
	"lost_time":               {},
	"close_time":              {},
	"first_won_time":          {},
	"marked_as_done_time":     {},
	"last_incoming_mail_time": {},
	"last_outgoing_mail_time": {},
	"last_activity_date":      {},
	"next_activity_date":      {},
	"next_activity_time":      {},
	"last_activity_id":        {},
	"next_activity_id":        {},
	"archive_time":            {},
}

// AddressComponents maps structured address keys to friendly labels, in the
// order they are emitted.
var AddressComponents = []struct {
	Key   string
	Label string
}{
	{"street_number", "Street Number"},
	{"route", "Street Name"},
	{"subpremise", "Apartment/Suite"},
	{"sublocality", "District"},
	{"locality", "City"},
	{"admin_area_level_1", "State/Province"},
	{"admin_area_level_2", "County"},
	{"country", "Country"},
	{"postal_code", "ZIP/Postal Code"},
}

func isAddressComponent(key string) bool {
	for _, ac := range AddressComponents {
		if ac.Key == key {
			return true
		}
	}
	return false
}

// crossEntityRoots are embedded objects that belong to another entity.
var crossEntityRoots = map[string]struct{}{
	"owner":        {},
	"user":         {},
	"creator_user": {},
	"person":       {},
	"org":          {},
	"organization": {},
	"deal":         {},
	"lead":         {},
	"product":      {},
	"activity":     {},
}

// DefaultRules is the read-only rule table. Order matters: editable
// exceptions come before the broader read-only rules they carve out of.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "contact-value",
			Match: func(c column.Column, _ *Context) bool {
				root := column.Root(c.Key)
				return c.IsNested && (root == "email" || root == "phone")
			},
		},
		{
			Name: "reference-value",
			Match: func(c column.Column, _ *Context) bool {
				return c.IsNested && column.Leaf(c.Key) == "value" &&
					strings.HasSuffix(column.Leaf(c.ParentKey), "_id")
			},
		},
		{
			Name:     "system",
			ReadOnly: true,
			Match: func(c column.Column, _ *Context) bool {
				if _, ok := systemFields[c.Key]; ok {
					return true
				}
				return column.Leaf(c.Key) == "id"
			},
		},
		{
			Name:     "counter",
			ReadOnly: true,
			Match: func(c column.Column, _ *Context) bool {
				return strings.HasSuffix(column.Leaf(c.Key), "_count")
			},
		},
		{
			Name:     "formatted",
			ReadOnly: true,
			Match: func(c column.Column, _ *Context) bool {
				leaf := column.Leaf(c.Key)
				return strings.HasPrefix(leaf, "formatted_") || strings.Contains(leaf, "_formatted_")
			},
		},
		{
			Name:     "timestamp",
			ReadOnly: true,
			Match: func(c column.Column, _ *Context) bool {
				_, ok := timestampFields[column.Leaf(c.Key)]
				return ok
			},
		},
		{
			Name:     "denormalized-name",
			ReadOnly: true,
			Match: func(c column.Column, ctx *Context) bool {
				leaf := column.Leaf(c.Key)
				base, ok := strings.CutSuffix(leaf, "_name")
				if !ok || base == "" {
					return false
				}
				return ctx.Has(column.Join(column.Parent(c.Key), base+"_id"))
			},
		},
		{
			Name:     "reference-field",
			ReadOnly: true,
			Match: func(c column.Column, _ *Context) bool {
				return c.IsNested && strings.HasSuffix(column.Leaf(c.ParentKey), "_id")
			},
		},
		{
			Name:     "address-component",
			ReadOnly: true,
			Match: func(c column.Column, ctx *Context) bool {
				return c.IsNested && isAddressComponent(column.Leaf(c.Key)) && ctx.Has(c.ParentKey)
			},
		},
		{
			Name:     "cross-entity",
			ReadOnly: true,
			Match: func(c column.Column, ctx *Context) bool {
				root := column.Root(c.Key)
				if _, ok := crossEntityRoots[root]; !ok || root == c.Key {
					return false
				}
				for _, p := range ctx.Entity.Prefixes() {
					if p == root {
						return false
					}
				}
				return true
			},
		},
	}
}

// Classifier applies an ordered rule table; the first matching rule decides.
// Columns no rule matches are editable.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier over rules, DefaultRules when none are given.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the read-only flag for c and the name of the deciding
// rule, "" when the default applied.
func (cl *Classifier) Classify(c column.Column, ctx *Context) (bool, string) {
	for _, r := range cl.rules {
		if r.Match(c, ctx) {
			return r.ReadOnly, r.Name
		}
	}
	return false, ""
}

// Apply returns a copy of cols with ReadOnly set. cols must already be the
// post-suppression survivors.
func (cl *Classifier) Apply(entity column.EntityType, cols []column.Column) []column.Column {
	ctx := NewContext(entity, cols)
	out := make([]column.Column, len(cols))
	for i, c := range cols {
		c.ReadOnly, _ = cl.Classify(c, ctx)
		out[i] = c
	}
	return out
}
