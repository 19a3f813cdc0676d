// Package match provides key normalization, Levenshtein distance and
// candidate ranking for suggesting a replacement when a saved column key
// no longer exists.
//
// Key functions:
//   - NormalizeKey: normalizes a column path for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks available keys against a missing one
package match
