package prefs

import (
	"context"
	"strings"
	"sync"
)

// Membership is a user's place in a team.
type Membership struct {
	UserEmail    string
	TeamID       string
	Role         string
	ShareColumns bool
}

// TeamResolver finds the team a user belongs to. ok is false for users in
// no team.
type TeamResolver interface {
	Membership(ctx context.Context, user string) (m Membership, ok bool, err error)
}

// TeamResolverFunc adapts a function to TeamResolver.
type TeamResolverFunc func(ctx context.Context, user string) (Membership, bool, error)

func (f TeamResolverFunc) Membership(ctx context.Context, user string) (Membership, bool, error) {
	return f(ctx, user)
}

// Team is one entry of a static team directory.
type Team struct {
	ID           string
	ShareColumns bool
	Members      []Member
}

// Member is one team member.
type Member struct {
	Email string
	Role  string
}

// Directory is a TeamResolver over a fixed team list. Emails compare
// case-insensitively.
type Directory struct {
	mu    sync.RWMutex
	teams map[string]Team
	teamOf map[string]string // email -> team id
}

// NewDirectory indexes teams. A member listed in several teams belongs to
// the last one.
func NewDirectory(teams ...Team) *Directory {
	d := &Directory{
		teams: make(map[string]Team, len(teams)),
		teamOf: make(map[string]string),
	}
	for _, t := range teams {
		d.teams[t.ID] = t
		for _, m := range t.Members {
			d.teamOf[normalizeEmail(m.Email)] = t.ID
		}
	}
	return d
}

func (d *Directory) Membership(_ context.Context, user string) (Membership, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	email := normalizeEmail(user)
	id, ok := d.teamOf[email]
	if !ok {
		return Membership{}, false, nil
	}
	t := d.teams[id]
	m := Membership{UserEmail: user, TeamID: t.ID, ShareColumns: t.ShareColumns}
	for _, member := range t.Members {
		if normalizeEmail(member.Email) == email {
			m.Role = member.Role
			break
		}
	}
	return m, true, nil
}

// SetShareColumns toggles column sharing for a team and reports whether the
// team exists.
func (d *Directory) SetShareColumns(teamID string, share bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.teams[teamID]
	if !ok {
		return false
	}
	t.ShareColumns = share
	d.teams[teamID] = t
	return true
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
