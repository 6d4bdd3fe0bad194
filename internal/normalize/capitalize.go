package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalizeExceptions marks a first word as code-like: identifiers with
// underscores, variables with sigils, and call-shaped words keep their
// casing. Both parentheses are included here; see DESIGN.md for the choice.
const capitalizeExceptions = "_$()"

// CapitalizeComment uppercases the first rune of a comment body, unless the
// first word looks like code or a dotted name (e.g. module.inc). The rest of
// the body is never touched.
func CapitalizeComment(body string) string {
	if body == "" {
		return body
	}
	first := body
	if i := strings.IndexByte(body, ' '); i >= 0 {
		first = body[:i]
	}
	if strings.ContainsAny(first, capitalizeExceptions) {
		return body
	}
	// A dot anywhere but the last position reads as a filename or dotted
	// identifier, not a sentence start. A trailing dot is just punctuation.
	if i := strings.IndexByte(first, '.'); i >= 0 && i < len(first)-1 {
		return body
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == utf8.RuneError && size <= 1 {
		return body
	}
	return string(unicode.ToUpper(r)) + body[size:]
}
