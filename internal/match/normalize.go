package match

import (
	"strings"
)

// NormalizeKey normalizes a column key for fuzzy matching:
//  1. Case-fold to lower.
//  2. Drop array index segments ("phone.0.value" -> "phone.value").
//  3. Strip separators (., _, -, spaces).
func NormalizeKey(s string) string {
	segs := strings.Split(strings.ToLower(s), ".")

	var b strings.Builder

	b.Grow(len(s))

	for _, seg := range segs {
		if isIndex(seg) {
			continue
		}

		b.WriteString(stripSeparators(seg))
	}

	return b.String()
}

// NormalizeKeyWithSuffixStrip normalizes and strips a trailing id token, so
// "org_id" and "org" compare equal.
func NormalizeKeyWithSuffixStrip(s string) string {
	normalized := NormalizeKey(s)

	for _, suffix := range []string{"ids", "id"} {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}

	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
