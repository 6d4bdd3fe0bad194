package normalize

import (
	"regexp"
	"strings"
)

// Options configures the optional pipeline stages.
type Options struct {
	// RemoveMarkers drops `// $Id$` version-control marker comments.
	RemoveMarkers bool
}

var (
	trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)
	markerComment      = regexp.MustCompile(`^[ \t]*// ?\$Id(:[^\n]*)?\$$`)
)

// Apply runs the full normalization pipeline over one file's content.
// Stage order matters: line endings are unified before anything splits on
// line feeds, and marker comments are removed before the comment pass so
// that dropped lines never affect comment-block adjacency.
func Apply(content string, opts Options) string {
	content = NormalizeLineEndings(content)
	content = StripTrailingWhitespace(content)
	content = EnsureFinalNewline(content)
	if opts.RemoveMarkers {
		content = RemoveMarkerComments(content)
	}
	return ApplyCommentPass(content)
}

// NormalizeLineEndings rewrites CRLF, lone CR, and the Unicode line
// separators NEL, LS, and PS to a single line feed. Idempotent.
func NormalizeLineEndings(content string) string {
	// Быстрый путь: чистый LF-текст проходит без аллокаций.
	if !strings.ContainsAny(content, "\r  ") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "", "\n")
	content = strings.ReplaceAll(content, " ", "\n")
	return strings.ReplaceAll(content, " ", "\n")
}

// StripTrailingWhitespace removes horizontal whitespace before each line
// end. Leading whitespace and the line feeds themselves are untouched.
func StripTrailingWhitespace(content string) string {
	return trailingWhitespace.ReplaceAllString(content, "")
}

// EnsureFinalNewline collapses any run of trailing line feeds to exactly one.
func EnsureFinalNewline(content string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// RemoveMarkerComments drops lines holding only a `// $Id$` or
// `// $Id: ...$` interpolation marker, together with their newline.
func RemoveMarkerComments(content string) string {
	if !strings.Contains(content, "$Id") {
		return content
	}
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if markerComment.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
