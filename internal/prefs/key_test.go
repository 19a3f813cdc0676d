package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crmcols/internal/column"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		stored string
		id     string
	}{
		{
			name:   "personal",
			key:    Key{Entity: column.EntityDeals, Sheet: "Pipeline", Scope: PersonalScope("ann@example.com")},
			stored: "COLUMNS_Pipeline_deals_ann@example.com",
			id:     "deals:Pipeline:ann@example.com",
		},
		{
			name:   "team",
			key:    Key{Entity: column.EntityPersons, Sheet: "Contacts 2024", Scope: TeamScope("42")},
			stored: "COLUMNS_Contacts 2024_persons_TEAM_42",
			id:     "persons:Contacts 2024:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stored, tt.key.String())
			assert.Equal(t, tt.id, tt.key.ID())
		})
	}
}

func TestScopeKind_String(t *testing.T) {
	assert.Equal(t, "personal", ScopePersonal.String())
	assert.Equal(t, "team", ScopeTeam.String())
	assert.Equal(t, "unknown", ScopeKind(9).String())
	assert.Equal(t, "team:sales", TeamScope("sales").String())
}
