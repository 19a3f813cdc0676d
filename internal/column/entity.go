package column

import (
	"fmt"
	"strings"
)

// EntityType is the CRM entity a sheet is synced from.
type EntityType string

const (
	EntityDeals         EntityType = "deals"
	EntityPersons       EntityType = "persons"
	EntityOrganizations EntityType = "organizations"
	EntityActivities    EntityType = "activities"
	EntityLeads         EntityType = "leads"
	EntityProducts      EntityType = "products"
)

// EntityTypes lists every supported entity type.
var EntityTypes = []EntityType{
	EntityDeals, EntityPersons, EntityOrganizations,
	EntityActivities, EntityLeads, EntityProducts,
}

// ParseEntityType accepts the plural API name, case-insensitively.
func ParseEntityType(s string) (EntityType, error) {
	norm := EntityType(strings.ToLower(strings.TrimSpace(s)))
	for _, e := range EntityTypes {
		if e == norm {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// Prefixes returns the root path segments that refer to this entity from
// inside its own records (an organization embeds "org" / "organization").
func (e EntityType) Prefixes() []string {
	switch e {
	case EntityDeals:
		return []string{"deal"}
	case EntityPersons:
		return []string{"person"}
	case EntityOrganizations:
		return []string{"org", "organization"}
	case EntityActivities:
		return []string{"activity"}
	case EntityLeads:
		return []string{"lead"}
	case EntityProducts:
		return []string{"product"}
	default:
		return nil
	}
}

// PersonLike reports whether records of this entity carry contact arrays.
func (e EntityType) PersonLike() bool {
	return e == EntityPersons
}

func (e EntityType) String() string { return string(e) }
