package config

import (
	"fmt"

	"crmcols/internal/column"
)

// validate performs basic checks on the loaded configuration.
func validate(c *Config) error {
	if err := c.Storage.validate(); err != nil {
		return err
	}
	for name := range c.PrimaryFields {
		if _, err := column.ParseEntityType(name); err != nil {
			return fmt.Errorf("primary_fields: %w", err)
		}
	}
	return validateTeams(c.Teams)
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if s.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
		return nil
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", DriverMemory, DriverSQLite, s.Driver)
	}
}

// validateTeams requires unique team ids and puts every member in at most
// one team.
func validateTeams(teams []TeamConfig) error {
	ids := make(map[string]struct{}, len(teams))
	members := make(map[string]string)

	for i, t := range teams {
		if t.ID == "" {
			return fmt.Errorf("teams[%d] missing id", i)
		}
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("teams contains duplicate id: %s", t.ID)
		}
		ids[t.ID] = struct{}{}

		for j, m := range t.Members {
			if m.Email == "" {
				return fmt.Errorf("teams.%s.members[%d] missing email", t.ID, j)
			}
			if other, ok := members[m.Email]; ok {
				return fmt.Errorf("member %s belongs to both %s and %s", m.Email, other, t.ID)
			}
			members[m.Email] = t.ID
		}
	}
	return nil
}
