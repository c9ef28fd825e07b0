package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// KebabCase lower-cases summary and collapses every run of characters that
// are not ASCII letters or digits into a single hyphen. The result is safe to
// use as a git ref component. KebabCase(KebabCase(s)) == KebabCase(s).
func KebabCase(summary string) string {
	folded, _, err := transform.String(foldAccents, summary)
	if err != nil {
		folded = summary
	}

	var builder strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			pendingHyphen = false
			builder.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return builder.String()
}
