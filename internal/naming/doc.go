// Package naming turns raw record keys into display labels and decides which
// columns are read-only.
//
// Key functions:
//   - Title: converts snake_case, dot.path and camelCase keys to Title Case words
//   - Formatter: field-name map lookup with Title as fallback, joined with the parent label
//   - Classifier: ordered read-only rule table, first match wins
package naming
