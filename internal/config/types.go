// Package config loads crmcols settings from a YAML file and CRMCOLS_
// environment variables.
package config

import (
	"crmcols/internal/column"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

const (
	defaultLogLevel      = "info"
	defaultStorageDriver = DriverSQLite
	defaultStoragePath   = "crmcols.db"
	envPrefix            = "CRMCOLS"
)

// Config is the full application configuration.
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	FieldMap string        `mapstructure:"field_map"` // path to a field-map YAML file
	Storage  StorageConfig `mapstructure:"storage"`
	// PrimaryFields overrides the primary field order per entity type.
	PrimaryFields map[string][]string `mapstructure:"primary_fields"`
	Teams         []TeamConfig        `mapstructure:"teams"`
}

// StorageConfig selects the preference backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// TeamConfig is one team of the static team directory.
type TeamConfig struct {
	ID           string         `mapstructure:"id"`
	ShareColumns bool           `mapstructure:"share_columns"`
	Members      []MemberConfig `mapstructure:"members"`
}

// MemberConfig is one team member.
type MemberConfig struct {
	Email string `mapstructure:"email"`
	Role  string `mapstructure:"role"`
}

// EntityPrimaryFields returns PrimaryFields keyed by entity type. Load has
// already validated the entity names.
func (c *Config) EntityPrimaryFields() map[column.EntityType][]string {
	out := make(map[column.EntityType][]string, len(c.PrimaryFields))
	for name, fields := range c.PrimaryFields {
		entity, err := column.ParseEntityType(name)
		if err != nil {
			continue
		}
		out[entity] = fields
	}
	return out
}
