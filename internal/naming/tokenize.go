package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are upper-cased instead of title-cased.
var acronyms = map[string]string{
	"id":  "ID",
	"ids": "IDs",
	"url": "URL",
	"cc":  "CC",
	"vat": "VAT",
	"api": "API",
}

// Title converts a raw key into Title Case words.
// Examples:
//   - "org_id" -> "Org ID"
//   - "next_activity_date" -> "Next Activity Date"
//   - "person.email" -> "Person Email"
//   - "expectedCloseDate" -> "Expected Close Date"
func Title(raw string) string {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return ""
	}

	// Caser is stateful; one per call.
	caser := cases.Title(language.English)

	for i, t := range tokens {
		lower := strings.ToLower(t)
		if a, ok := acronyms[lower]; ok {
			tokens[i] = a
			continue
		}
		tokens[i] = caser.String(lower)
	}

	return strings.Join(tokens, " ")
}

// tokenize splits a key on separators and CamelCase boundaries.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "custom_fields.abc" -> ["custom", "fields", "abc"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// NormalizeLabel lower-cases and trims a free-text label (contact labels,
// user input) for exact comparison.
func NormalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
