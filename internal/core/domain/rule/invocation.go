package rule

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Invocation is a single line typed by the user.
type Invocation struct {
	TypedLine string
}

/*
Split separates the invocation name from the rest of the line.

Leading whitespace is ignored. The name is the first whitespace-delimited
token; the remainder is everything after the single whitespace character
that ends the name, kept verbatim.
*/
func (inv Invocation) Split() (name, remainder string) {
	line := strings.TrimLeftFunc(inv.TypedLine, unicode.IsSpace)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, ""
	}
	_, size := utf8.DecodeRuneInString(line[idx:])
	return line[:idx], line[idx+size:]
}

// HasArguments reports whether remainder carries at least one non-whitespace
// character.
func HasArguments(remainder string) bool {
	return strings.TrimSpace(remainder) != ""
}
