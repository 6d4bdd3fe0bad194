package normalize

import "testing"

func TestCapitalizeComment(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain sentence", body: "hello world", want: "Hello world"},
		{name: "single word", body: "done", want: "Done"},
		{name: "sigil keeps casing", body: "$foo bar", want: "$foo bar"},
		{name: "underscore keeps casing", body: "my_func is called", want: "my_func is called"},
		{name: "call shape keeps casing", body: "foo() returns nil", want: "foo() returns nil"},
		{name: "open paren keeps casing", body: "(optional) flag", want: "(optional) flag"},
		{name: "dotted name keeps casing", body: "module.inc is great", want: "module.inc is great"},
		{name: "trailing dot still capitalized", body: "a.", want: "A."},
		{name: "unicode first rune", body: "éclair recipe", want: "Éclair recipe"},
		{name: "already uppercase", body: "Hello", want: "Hello"},
		{name: "digit first", body: "3 retries", want: "3 retries"},
		{name: "empty body", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapitalizeComment(tt.body); got != tt.want {
				t.Fatalf("CapitalizeComment(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
