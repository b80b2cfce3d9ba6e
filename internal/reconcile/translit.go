package reconcile

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes to NFD and strips combining marks, so that
// downstream storage and fuzzy lookups can assume plain-ASCII names
// ("Sergio Agüero" -> "Sergio Aguero").
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate returns s with diacritics stripped. On transform failure
// the input is returned unchanged.
func Transliterate(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}
