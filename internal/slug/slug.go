// Package slug turns display names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var pattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var symbols = strings.NewReplacer("@", " at ", "&", " and ")

// Make lowercases name, transliterates it to ASCII and joins every run of
// alphanumerics with a single hyphen. "Example Taxon" becomes "example-taxon"
// and "Книги" becomes "knigi". Names without any letter or digit give "".
func Make(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		folded = name
	}
	folded = unidecode.Unidecode(symbols.Replace(folded))

	var b strings.Builder
	b.Grow(len(folded))
	gap := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// Valid reports whether s is already in canonical slug form
func Valid(s string) bool {
	return pattern.MatchString(s)
}
