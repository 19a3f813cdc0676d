package main

import (
	"fmt"
	"io"
	"log/slog"

	"crmcols/internal/column"
	"crmcols/internal/config"
	"crmcols/internal/discover"
	"crmcols/internal/fieldmap"
	"crmcols/internal/logging"
	"crmcols/internal/naming"
	"crmcols/internal/prefs"
)

// app is everything one command invocation needs, built from config.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	fields    *fieldmap.File
	extractor *discover.Extractor
	store     *prefs.Store
	closer    io.Closer
}

type appOptions struct {
	configPath string
	logLevel   string
	fieldMap   string
	needStore  bool
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logging.SetLevel(level)
	log := logging.L()

	a := &app{cfg: cfg, log: log}

	fieldMapPath := cfg.FieldMap
	if opts.fieldMap != "" {
		fieldMapPath = opts.fieldMap
	}
	if fieldMapPath != "" {
		a.fields, err = fieldmap.LoadFile(fieldMapPath)
		if err != nil {
			return nil, err
		}
	}

	a.extractor = discover.New(
		discover.WithPrimaryFields(cfg.EntityPrimaryFields()),
		discover.WithLogger(log),
	)

	if opts.needStore {
		backend, closer, err := openBackend(cfg.Storage)
		if err != nil {
			return nil, err
		}
		a.closer = closer
		a.store = prefs.NewStore(backend,
			prefs.WithTeams(directory(cfg.Teams)),
			prefs.WithLogger(log),
		)
	}

	return a, nil
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// fieldNames returns the configured labels for entity.
func (a *app) fieldNames(entity column.EntityType) naming.FieldNames {
	return a.fields.ForEntity(entity)
}

func openBackend(sc config.StorageConfig) (prefs.Backend, io.Closer, error) {
	switch sc.Driver {
	case config.DriverMemory:
		return prefs.NewMemoryBackend(), nil, nil
	case config.DriverSQLite:
		b, err := prefs.NewSQLBackend(sc.Path)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", sc.Driver)
	}
}

func directory(teams []config.TeamConfig) *prefs.Directory {
	out := make([]prefs.Team, 0, len(teams))
	for _, t := range teams {
		team := prefs.Team{ID: t.ID, ShareColumns: t.ShareColumns}
		for _, m := range t.Members {
			team.Members = append(team.Members, prefs.Member{Email: m.Email, Role: m.Role})
		}
		out = append(out, team)
	}
	return prefs.NewDirectory(out...)
}
