package intern

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold returns the lower-case form of text.
//
// ASCII input is handled without the Unicode caser and is returned as-is when
// it contains no upper-case letters.
func fold(text string) string {
	hasUpper := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= utf8.RuneSelf {
			// cases.Caser holds state and is not safe for concurrent use.
			return cases.Lower(language.Und).String(text)
		}
		if 'A' <= c && c <= 'Z' {
			hasUpper = true
		}
	}
	if !hasUpper {
		return text
	}
	return strings.ToLower(text)
}
