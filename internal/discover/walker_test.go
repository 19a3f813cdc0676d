package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmcols/internal/column"
	"crmcols/internal/diagnostic"
	"crmcols/internal/naming"
	"crmcols/jsonval"
)

func mustParse(t *testing.T, raw string) jsonval.Value {
	t.Helper()
	v, err := jsonval.ParseString(raw)
	require.NoError(t, err)
	return v
}

func walk(t *testing.T, raw string, fields naming.FieldNames) Accumulator {
	t.Helper()
	w := NewWalker(naming.NewFormatter(fields))
	return w.Walk(mustParse(t, raw), "", "", NewAccumulator(column.EntityDeals))
}

func TestWalk_ScalarsInSourceOrder(t *testing.T) {
	acc := walk(t, `{"title":"Big","id":7,"value":null,"done":false}`, nil)

	assert.Equal(t, []string{"title", "id", "value", "done"}, column.Keys(acc.Columns))
	assert.Equal(t, "Title", acc.Columns[0].Name)
	assert.False(t, acc.Columns[0].IsNested)
	assert.Empty(t, acc.Columns[0].ParentKey)
}

func TestWalk_NestedObject(t *testing.T) {
	acc := walk(t, `{"org_id":{"name":"Acme","value":3,"address":{"city":"Tartu"}}}`,
		naming.FieldNames{"org_id": "Organization"})

	require.Len(t, acc.Columns, 3)

	assert.Equal(t, column.Column{
		Key: "org_id.name", Name: "Organization Name", IsNested: true, ParentKey: "org_id",
	}, acc.Columns[0])
	assert.Equal(t, "org_id.value", acc.Columns[1].Key)
	assert.Equal(t, column.Column{
		Key: "org_id.address.city", Name: "Organization Address City", IsNested: true, ParentKey: "org_id.address",
	}, acc.Columns[2])
}

func TestWalk_SkipsPrivateKeysAndArtifacts(t *testing.T) {
	record := jsonval.FromAny(map[string]any{
		"_meta":   map[string]any{"x": 1},
		"id":      1,
		"handler": func() {},
	})

	acc := NewWalker(nil).Walk(record, "", "", NewAccumulator(column.EntityDeals))
	assert.Equal(t, []string{"id"}, column.Keys(acc.Columns))
}

func TestWalk_OpaqueValues(t *testing.T) {
	acc := walk(t, `{"label_ids":["a","b"],"tags":[],"settings":{}}`, nil)

	assert.Equal(t, []string{"label_ids", "tags", "settings"}, column.Keys(acc.Columns))
	assert.Equal(t, "Label IDs", acc.Columns[0].Name)
}

func TestWalk_ArraySampledFirstItem(t *testing.T) {
	acc := walk(t, `{"participants":[{"person_id":5,"added":true},{"person_id":6,"extra":1}]}`, nil)

	require.Len(t, acc.Columns, 2)
	assert.Equal(t, column.Column{
		Key:       "participants.0.person_id",
		Name:      "Participants (First Item) Person ID",
		IsNested:  true,
		ParentKey: "participants.0",
	}, acc.Columns[0])
	assert.Equal(t, "participants.0.added", acc.Columns[1].Key)

	require.Len(t, acc.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeArraySampled, acc.Diagnostics.Infos[0].Code)
	assert.Equal(t, "participants", acc.Diagnostics.Infos[0].Path)
}

func TestWalk_SubtreeInIsolation(t *testing.T) {
	node := mustParse(t, `{"name":"Ann","email":"a@x"}`)

	acc := NewWalker(nil).Walk(node, "person_id", "Person", NewAccumulator(column.EntityDeals))
	assert.Equal(t, []string{"person_id.name", "person_id.email"}, column.Keys(acc.Columns))
	assert.Equal(t, "Person Email", acc.Columns[1].Name)
	assert.Equal(t, "person_id", acc.Columns[1].ParentKey)
}

func TestWalk_DoesNotShareState(t *testing.T) {
	w := NewWalker(nil)
	node := mustParse(t, `{"custom_fields":{"abc":1}}`)

	first := w.Walk(node, "", "", NewAccumulator(column.EntityDeals))
	second := w.Walk(node, "", "", NewAccumulator(column.EntityDeals))

	assert.Equal(t, first.Columns, second.Columns)
	assert.Len(t, second.Columns, 1)
}
