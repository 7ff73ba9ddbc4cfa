package lang

import (
	"testing"
)

func TestForExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want string
	}{
		{".rs", "rust"},
		{".go", ""},
		{".py", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			got := ForExtension(tt.ext)
			if got != tt.want {
				t.Errorf("ForExtension(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestLanguagesRegistered(t *testing.T) {
	t.Parallel()

	rs, ok := Languages["rust"]
	if !ok {
		t.Fatal("rust language not registered")
	}
	if rs.GetLanguage() == nil {
		t.Error("rust language is nil")
	}
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	p := Languages["rust"].NewParser()
	if p == nil {
		t.Fatal("NewParser returned nil")
	}
}

func TestCompactTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Option < Vec < String > >", "Option<Vec<String>>"},
		{"HashMap<String, i32>", "HashMap<String,i32>"},
		{"&'static str", "&'static str"},
		{"std :: collections :: HashMap < K , V >", "std::collections::HashMap<K,V>"},
		{`serde(rename = "a b")`, `serde(rename="a b")`},
		{`serde(rename = "say \"hi\"")`, `serde(rename="say \"hi\"")`},
		{"dyn  Trait", "dyn Trait"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := CompactTokens(tt.in); got != tt.want {
				t.Errorf("CompactTokens(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	if got := CollapseWhitespace("  a \n\t b  "); got != "a b" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}
