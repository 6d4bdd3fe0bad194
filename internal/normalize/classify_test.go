package normalize

import "testing"

func TestIsProcessableComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "plain comment", line: "// hello", want: true},
		{name: "no space after slashes", line: "  //no-space", want: true},
		{name: "bare marker", line: "//", want: true},
		{name: "tab indented", line: "\t// indented", want: true},
		{name: "empty body with space", line: "// ", want: true},
		{name: "html closer", line: "  // --> end", want: false},
		{name: "html closer no space", line: "//-->", want: false},
		{name: "cdata opener", line: "// <![CDATA[", want: false},
		{name: "cdata closer", line: "//]]>", want: false},
		{name: "trailing comment after code", line: "return 1; // done", want: false},
		{name: "single slash", line: "/ nope", want: false},
		{name: "plain code", line: "return 1;", want: false},
		{name: "empty line", line: "", want: false},
		{name: "block comment", line: "/* block */", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProcessableComment(tt.line); got != tt.want {
				t.Fatalf("IsProcessableComment(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
