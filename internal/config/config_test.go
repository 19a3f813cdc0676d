package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmcols/internal/column"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crmcols.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level: DEBUG
field_map: fields.yaml
storage:
  driver: memory
primary_fields:
  deals: [title, value]
teams:
  - id: sales
    share_columns: true
    members:
      - email: Ann@Example.com
        role: admin
      - email: bob@example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fields.yaml", cfg.FieldMap)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, map[column.EntityType][]string{
		column.EntityDeals: {"title", "value"},
	}, cfg.EntityPrimaryFields())

	require.Len(t, cfg.Teams, 1)
	team := cfg.Teams[0]
	assert.Equal(t, "sales", team.ID)
	assert.True(t, team.ShareColumns)
	assert.Equal(t, []MemberConfig{
		{Email: "ann@example.com", Role: "admin"},
		{Email: "bob@example.com"},
	}, team.Members)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, defaultStoragePath, cfg.Storage.Path)
	assert.Empty(t, cfg.Teams)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CRMCOLS_LOG_LEVEL", "warn")
	t.Setenv("CRMCOLS_STORAGE_DRIVER", "memory")

	path := writeConfig(t, "log_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown driver",
			body: "storage:\n  driver: redis\n",
			want: `storage.driver must be "memory" or "sqlite", got "redis"`,
		},
		{
			name: "sqlite without path",
			body: "storage:\n  driver: sqlite\n  path: \" \"\n",
			want: "storage.path is required",
		},
		{
			name: "unknown entity",
			body: "primary_fields:\n  tickets: [subject]\n",
			want: `unknown entity type "tickets"`,
		},
		{
			name: "team without id",
			body: "teams:\n  - share_columns: true\n",
			want: "teams[0] missing id",
		},
		{
			name: "duplicate team",
			body: "teams:\n  - id: a\n  - id: a\n",
			want: "duplicate id: a",
		},
		{
			name: "member in two teams",
			body: "teams:\n  - id: a\n    members: [{email: x@y}]\n  - id: b\n    members: [{email: X@Y}]\n",
			want: "member x@y belongs to both a and b",
		},
		{
			name: "member without email",
			body: "teams:\n  - id: a\n    members: [{role: admin}]\n",
			want: "teams.a.members[0] missing email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
