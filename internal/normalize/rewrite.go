package normalize

import "strings"

// closingPunctuation are the characters that already terminate a comment
// line; no period is appended after them.
const closingPunctuation = "?!.;}"

// RewriteComment normalizes one processable comment line. prevWasComment and
// nextIsComment carry the block-adjacency state tracked by the comment pass:
// capitalization applies only at the start of a comment block, terminal
// punctuation only at its end. Lines that fail the comment shape are
// returned unchanged.
func RewriteComment(line string, prevWasComment, nextIsComment bool) string {
	m := commentPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	marker, body := m[1], m[3]

	// An empty body stays a bare marker: no trailing space, no period.
	// Punctuating `//` separators would break pipeline idempotence.
	if body == "" {
		return marker
	}

	if !prevWasComment {
		body = CapitalizeComment(body)
	}
	line = marker + " " + body

	if nextIsComment {
		return line
	}
	// Directive comments (@-prefixed annotations) are tooling input; adding
	// punctuation would corrupt them.
	if strings.HasPrefix(strings.TrimLeft(body, " \t"), "@") {
		return line
	}
	switch last := line[len(line)-1]; {
	case last == ':':
		line = line[:len(line)-1] + "."
	case !strings.ContainsRune(closingPunctuation, rune(last)):
		line += "."
	}
	return line
}
