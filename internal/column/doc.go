// Package column defines the column model shared by discovery, the registry,
// the picker and the preference store.
//
// A Column is addressed by a dot-path Key ("org_id.name", "email.work",
// "custom_fields.abc123"). Keys are the stable identifiers persisted in
// preference records, so their format must not change between versions.
package column
