package prefs

import (
	"strings"

	"crmcols/internal/column"
	"crmcols/internal/common"
)

const (
	keyPrefix  = "COLUMNS_"
	teamMarker = "TEAM_"
)

// ScopeKind tells personal and team records apart.
type ScopeKind int

const (
	ScopePersonal ScopeKind = iota
	ScopeTeam
)

// String returns a human-readable scope name.
func (k ScopeKind) String() string {
	switch k {
	case ScopePersonal:
		return "personal"
	case ScopeTeam:
		return "team"
	default:
		return common.UnknownStr
	}
}

// Scope is who a record belongs to: a user email or a team id.
type Scope struct {
	Kind ScopeKind
	ID   string
}

// PersonalScope returns the scope of user's own records.
func PersonalScope(user string) Scope {
	return Scope{Kind: ScopePersonal, ID: user}
}

// TeamScope returns the scope shared by a team.
func TeamScope(teamID string) Scope {
	return Scope{Kind: ScopeTeam, ID: teamID}
}

// IsTeam reports whether the scope is shared.
func (s Scope) IsTeam() bool { return s.Kind == ScopeTeam }

func (s Scope) String() string {
	return s.Kind.String() + ":" + s.ID
}

// Key addresses exactly one record.
type Key struct {
	Entity column.EntityType
	Sheet  string
	Scope  Scope
}

// String returns the persisted storage key.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	b.WriteString(k.Sheet)
	b.WriteByte('_')
	b.WriteString(k.Entity.String())
	b.WriteByte('_')
	if k.Scope.IsTeam() {
		b.WriteString(teamMarker)
	}
	b.WriteString(k.Scope.ID)
	return b.String()
}

// ID returns the logical record id, entity:sheet:scopeId.
func (k Key) ID() string {
	return k.Entity.String() + ":" + k.Sheet + ":" + k.Scope.ID
}
