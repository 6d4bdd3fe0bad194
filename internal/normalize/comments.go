package normalize

import "strings"

// ApplyCommentPass runs the comment rewriter over every line of content.
// The single piece of state is the prevWasComment accumulator; it is
// initialized per document and discarded after the last line. Splitting and
// rejoining on line feeds preserves the line count exactly.
func ApplyCommentPass(content string) string {
	lines := strings.Split(content, "\n")
	prevWasComment := false
	for i, line := range lines {
		curIsComment := IsProcessableComment(line)
		nextIsComment := false
		if i+1 < len(lines) {
			nextIsComment = IsProcessableComment(lines[i+1])
		}
		if curIsComment {
			lines[i] = RewriteComment(line, prevWasComment, nextIsComment)
		}
		prevWasComment = curIsComment
	}
	return strings.Join(lines, "\n")
}
