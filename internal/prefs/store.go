package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crmcols/internal/column"
)

// ErrEmptyUser is returned when a call names no user.
var ErrEmptyUser = errors.New("prefs: empty user email")

// Record is one stored selection. Columns is empty when nothing is stored;
// callers then apply their defaults.
type Record struct {
	Entity  column.EntityType
	Sheet   string
	Scope   Scope
	Columns column.Selection
}

// Store resolves scopes and reads and writes records.
type Store struct {
	backend Backend
	teams   TeamResolver
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTeams sets the team resolver. Without one every user is personal.
func WithTeams(r TeamResolver) Option {
	return func(s *Store) { s.teams = r }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore returns a Store over backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scope returns the scope user's records currently resolve to. Team lookup
// failures degrade to the personal scope.
func (s *Store) Scope(ctx context.Context, user string) (Scope, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return Scope{}, ErrEmptyUser
	}
	return s.resolve(ctx, user), nil
}

func (s *Store) resolve(ctx context.Context, user string) Scope {
	if s.teams == nil {
		return PersonalScope(user)
	}

	m, ok, err := s.teams.Membership(ctx, user)
	if err != nil {
		s.log.Warn("team lookup failed, using personal scope", "user", user, "error", err)
		return PersonalScope(user)
	}
	if !ok || !m.ShareColumns || m.TeamID == "" {
		return PersonalScope(user)
	}
	return TeamScope(m.TeamID)
}

// Get returns the selection user sees for entity on sheet.
//
// Under a sharing team the team record wins. When it does not exist yet the
// user's personal record is copied into the team scope and returned; a
// concurrent copy that landed first is authoritative instead.
func (s *Store) Get(ctx context.Context, entity column.EntityType, sheet, user string) (Record, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return Record{}, ErrEmptyUser
	}

	scope := s.resolve(ctx, user)
	rec := Record{Entity: entity, Sheet: sheet, Scope: scope}

	key := Key{Entity: entity, Sheet: sheet, Scope: scope}
	raw, ok, err := s.backend.Get(ctx, key.String())
	if err != nil {
		return rec, fmt.Errorf("read %s: %w", key.ID(), err)
	}
	if ok {
		rec.Columns = s.decode(key, raw)
		return rec, nil
	}

	if !scope.IsTeam() {
		return rec, nil
	}

	personal := Key{Entity: entity, Sheet: sheet, Scope: PersonalScope(user)}
	raw, ok, err = s.backend.Get(ctx, personal.String())
	if err != nil {
		return rec, fmt.Errorf("read %s: %w", personal.ID(), err)
	}
	if !ok {
		return rec, nil
	}

	cols := s.decode(personal, raw)
	if len(cols) == 0 {
		return rec, nil
	}

	rec.Columns = cols
	s.migrate(ctx, personal, key, raw, &rec)

	return rec, nil
}

// migrate copies a personal record into the team scope. The copy is
// byte-identical, so a repeated or racing migration leaves the same data.
func (s *Store) migrate(ctx context.Context, from, to Key, raw []byte, rec *Record) {
	stored, err := s.backend.PutIfAbsent(ctx, to.String(), raw)
	if err != nil {
		s.log.Warn("column preference migration failed", "from", from.ID(), "to", to.ID(), "error", err)
		return
	}
	if stored {
		s.log.Info("column preferences migrated to team scope", "from", from.ID(), "to", to.ID())
		return
	}

	// Another writer created the team record in between; it wins.
	current, ok, err := s.backend.Get(ctx, to.String())
	if err != nil || !ok {
		return
	}
	rec.Columns = s.decode(to, current)
}

// Save replaces the record user's scope resolves to with sel.
func (s *Store) Save(ctx context.Context, entity column.EntityType, sheet, user string, sel column.Selection) (Record, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return Record{}, ErrEmptyUser
	}

	scope := s.resolve(ctx, user)
	key := Key{Entity: entity, Sheet: sheet, Scope: scope}
	cols := sel.Dedup()

	raw, err := Encode(cols)
	if err != nil {
		return Record{}, fmt.Errorf("encode %s: %w", key.ID(), err)
	}
	if err := s.backend.Put(ctx, key.String(), raw); err != nil {
		return Record{}, fmt.Errorf("write %s: %w", key.ID(), err)
	}

	s.log.Debug("column preferences saved", "key", key.ID(), "columns", len(cols))

	return Record{Entity: entity, Sheet: sheet, Scope: scope, Columns: cols}, nil
}

// decode treats a corrupt record as empty.
func (s *Store) decode(key Key, raw []byte) column.Selection {
	sel, err := Decode(raw)
	if err != nil {
		s.log.Warn("ignoring corrupt column preferences", "key", key.ID(), "error", err)
		return column.Selection{}
	}
	return sel
}
