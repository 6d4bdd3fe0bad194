package normalize

import "regexp"

// commentPattern decomposes a candidate comment line into the marker prefix
// (leading horizontal whitespace plus slashes), the optional single space
// after the marker, and the body. The body may be empty.
var commentPattern = regexp.MustCompile(`^([ \t]*//)( ?)(.*)$`)

// exclusionPatterns reject lines that match the comment shape but are not
// real comments: HTML comment closers and legacy CDATA script-escaping
// markers. Matched against the text after the slashes.
var exclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[ \t]*-->`),
	regexp.MustCompile(`^[ \t]*<!\[CDATA\[`),
	regexp.MustCompile(`^[ \t]*\]\]>`),
}

// IsProcessableComment reports whether line is a single-line `//` comment
// that the comment pass is allowed to rewrite. Pure predicate: any line
// that fails the shape match or hits an exclusion simply passes through.
func IsProcessableComment(line string) bool {
	m := commentPattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	rest := m[2] + m[3]
	for _, p := range exclusionPatterns {
		if p.MatchString(rest) {
			return false
		}
	}
	return true
}
