package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crmcols/internal/column"
)

func top(key string) column.Column {
	return column.Column{Key: key}
}

func nested(key string) column.Column {
	return column.Column{Key: key, IsNested: true, ParentKey: column.Parent(key)}
}

func TestClassifier(t *testing.T) {
	cols := []column.Column{
		top("id"), top("title"), top("value"), top("org_id"), top("org_name"),
		top("owner_name"), top("add_time"), top("activities_count"),
		top("formatted_value"), top("address_formatted_address"),
		top("expected_close_date"),
		nested("email.0.value"), nested("email.work"),
		nested("person_id.name"), nested("person_id.value"),
		nested("owner.name"), nested("org.name"),
		top("custom_fields.abc"), nested("custom_fields.abc.locality"),
	}

	tests := []struct {
		key      string
		entity   column.EntityType
		readOnly bool
		rule     string
	}{
		{"id", column.EntityDeals, true, "system"},
		{"title", column.EntityDeals, false, ""},
		{"value", column.EntityDeals, false, ""},
		{"org_id", column.EntityDeals, false, ""},
		{"org_name", column.EntityDeals, true, "denormalized-name"},
		// no owner_id column survived
		{"owner_name", column.EntityDeals, false, ""},
		{"add_time", column.EntityDeals, true, "timestamp"},
		{"activities_count", column.EntityDeals, true, "counter"},
		{"formatted_value", column.EntityDeals, true, "formatted"},
		{"address_formatted_address", column.EntityOrganizations, true, "formatted"},
		{"expected_close_date", column.EntityDeals, false, ""},
		{"email.0.value", column.EntityPersons, false, "contact-value"},
		{"email.work", column.EntityPersons, false, "contact-value"},
		{"person_id.name", column.EntityDeals, true, "reference-field"},
		{"person_id.value", column.EntityDeals, false, "reference-value"},
		{"owner.name", column.EntityDeals, true, "cross-entity"},
		{"org.name", column.EntityDeals, true, "cross-entity"},
		{"org.name", column.EntityOrganizations, false, ""},
		{"custom_fields.abc.locality", column.EntityDeals, true, "address-component"},
	}

	cl := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.key+"@"+tt.entity.String(), func(t *testing.T) {
			ctx := NewContext(tt.entity, cols)
			var col column.Column
			for _, c := range cols {
				if c.Key == tt.key {
					col = c
				}
			}
			readOnly, rule := cl.Classify(col, ctx)
			assert.Equal(t, tt.readOnly, readOnly)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestClassifier_ApplyUsesSurvivorsOnly(t *testing.T) {
	cl := NewClassifier()

	// org_id present: org_name is derived
	out := cl.Apply(column.EntityDeals, []column.Column{top("org_id"), top("org_name")})
	assert.True(t, out[1].ReadOnly)

	// org_id suppressed upstream: org_name stays editable
	out = cl.Apply(column.EntityDeals, []column.Column{top("org_name")})
	assert.False(t, out[0].ReadOnly)
}

func TestClassifier_CustomRules(t *testing.T) {
	cl := NewClassifier(Rule{
		Name:     "everything",
		ReadOnly: true,
		Match:    func(column.Column, *Context) bool { return true },
	})
	out := cl.Apply(column.EntityDeals, []column.Column{top("title")})
	assert.True(t, out[0].ReadOnly)
}
