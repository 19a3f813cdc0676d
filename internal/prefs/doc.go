// Package prefs stores the column selection a user picked for one entity
// type on one sheet.
//
// A selection lives in one of two scopes. Users whose team shares columns
// read and write the team record; everyone else has a personal record. The
// first read under a sharing team with no team record yet copies the user's
// personal record into the team scope, once.
//
// Records are full replacements, last writer wins. Keys and values keep the
// shape existing deployments already persisted:
//
//	COLUMNS_{sheet}_{entity}_{userEmail}
//	COLUMNS_{sheet}_{entity}_TEAM_{teamId}
//
// with a JSON array of {key, name, customName, isNested, parentKey} as value.
package prefs
