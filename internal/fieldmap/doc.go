// Package fieldmap loads the field-name maps the CRM's field collaborator
// supplies, so extraction can label columns without a live CRM.
//
// A field-map file is YAML keyed by entity type:
//
//	version: "1"
//	entities:
//	  deals:
//	    a1b2c3d4e5f6a7b8c9d0e1f2: Lead Source
//	    title: Deal Title
//	  persons:
//	    org_id.name: Company
//
// Keys are either a bare raw key or a full column path. Path keys only ever
// label the column at that path.
package fieldmap
