package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmcols/internal/discover"
)

const dealJSON = `{"id":1,"title":"Big","value":10,"org_id":{"name":"Acme","value":3},"org":{"name":"Acme"},"a1b2c3d4e5f6a7b8c9d0e1f2":"web"}`

type env struct {
	dir    string
	config string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()

	write(t, filepath.Join(dir, "fields.yaml"), `
entities:
  deals:
    a1b2c3d4e5f6a7b8c9d0e1f2: Lead Source
`)
	write(t, filepath.Join(dir, "deal.json"), dealJSON)

	cfg := filepath.Join(dir, "crmcols.yaml")
	write(t, cfg, `
log_level: error
field_map: `+filepath.Join(dir, "fields.yaml")+`
storage:
  driver: sqlite
  path: `+filepath.Join(dir, "db", "prefs.db")+`
teams:
  - id: sales
    share_columns: true
    members:
      - email: ann@example.com
      - email: bob@example.com
`)
	return env{dir: dir, config: cfg}
}

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDiscover_Table(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "discover", "deals", filepath.Join(e.dir, "deal.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "Lead Source")
	assert.Contains(t, out, "org_id.name")
	assert.NotContains(t, out, "org.name")
}

func TestDiscover_JSONMultipleSamples(t *testing.T) {
	e := newEnv(t)
	write(t, filepath.Join(e.dir, "bad.json"), `{"id":`)

	out, err := e.run(t, "", "discover", "deals",
		filepath.Join(e.dir, "deal.json"), filepath.Join(e.dir, "bad.json"), "--json")
	require.NoError(t, err)

	var results []discover.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.False(t, results[0].Fallback)
	assert.Equal(t, "id", results[0].Columns[0].Key)
	assert.True(t, results[1].Fallback)
}

func TestDiscover_Stdin(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, `{"id":1,"name":"Ann","email":[{"label":"work","value":"a@x","primary":true}]}`,
		"discover", "persons", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "email.work")
}

func TestDiscover_Errors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "discover", "tickets", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")

	_, err = e.run(t, "", "discover", "deals", filepath.Join(e.dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sample")
}

func TestPrefs_SaveGetShared(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, `[{"key":"title","name":"Title","customName":"Deal"},{"key":"gone","name":"Gone"}]`,
		"prefs", "save", "deals", "Q3", "--user", "ann@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "SAVED 2 columns to team:sales")

	out, err = e.run(t, "", "prefs", "get", "deals", "Q3", "--user", "bob@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "scope: team:sales")
	assert.Contains(t, out, "Deal")

	out, err = e.run(t, "", "prefs", "get", "deals", "Q3", "--user", "bob@example.com",
		"--sample", filepath.Join(e.dir, "deal.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "stale-selection")
}

func TestPrefs_GetDefaults(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "prefs", "get", "deals", "Q3", "--user", "eve@example.com",
		"--sample", filepath.Join(e.dir, "deal.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "scope: personal:eve@example.com")
	assert.Contains(t, out, "showing defaults")
}

func TestPrefs_Scope(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "prefs", "scope", "--user", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "team:sales\n", out)

	out, err = e.run(t, "", "prefs", "scope", "--user", "eve@example.com")
	require.NoError(t, err)
	assert.Equal(t, "personal:eve@example.com\n", out)
}

func TestPrefs_RequiresUser(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "prefs", "scope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"user" not set`)
}

func TestPrefs_SaveEmptyStdin(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "prefs", "save", "deals", "Q3", "--user", "ann@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no selection given")
}
