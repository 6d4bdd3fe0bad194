package selector

import "testing"

func TestSelectorMatches(t *testing.T) {
	sel, err := New(
		[]string{"**/*.php", "**/*.inc"},
		[]string{"**/vendor/**", "**/*.min.php"},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		rel  string
		want bool
	}{
		{rel: "index.php", want: true},
		{rel: "sites/all/module.inc", want: true},
		{rel: "deep/nested/dir/file.php", want: true},
		{rel: "vendor/lib/file.php", want: false},
		{rel: "app/vendor/lib/file.php", want: false},
		{rel: "app/bundle.min.php", want: false},
		{rel: "readme.txt", want: false},
		{rel: "file.php.bak", want: false},
	}
	for _, tt := range tests {
		if got := sel.Matches(tt.rel); got != tt.want {
			t.Fatalf("Matches(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestSelectorExclusionWins(t *testing.T) {
	sel, err := New([]string{"**/*.php"}, []string{"**/*.php"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if sel.Matches("a.php") {
		t.Fatalf("exclusion must take priority over inclusion")
	}
}

func TestSelectorEmptyIncludeMatchesNothing(t *testing.T) {
	sel, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if sel.Matches("a.php") {
		t.Fatalf("selector without include patterns matched %q", "a.php")
	}
}

func TestSelectorInvalidPattern(t *testing.T) {
	if _, err := New([]string{"[unclosed"}, nil); err == nil {
		t.Fatalf("expected error for invalid include pattern")
	}
	if _, err := New([]string{"**/*.php"}, []string{"[unclosed"}); err == nil {
		t.Fatalf("expected error for invalid exclude pattern")
	}
}

func TestSelectorZeroDirectories(t *testing.T) {
	// `**/` must also match files directly under the walk root.
	sel, err := New([]string{"**/*.php"}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !sel.Matches("file.php") {
		t.Fatalf("pattern **/*.php did not match a root-level file")
	}
}
