package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining diacritical marks so that accented input
// normalizes to the same identifier regardless of how it was typed.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName trims surrounding whitespace and uppercases a name or label
func NormalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeIdentifier trims, strips accents and uppercases a reference
// identifier (numero, matricule, invoice number)
func NormalizeIdentifier(s string) string {
	folded, _, err := transform.String(stripAccents, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return strings.ToUpper(folded)
}
