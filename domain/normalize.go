package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize turns a free-text university or branch name into its matching form:
// lower-cased, trimmed, and with inner whitespace runs collapsed to a single space.
// "MIT ", "mit" and " Mit" all normalize to "mit".
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.Join(strings.Fields(s), " "))
}
