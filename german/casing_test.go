package german

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		word     string
		expected Casing
	}{
		{"müller", AllLower},
		{"MÜLLER", AllUpper},
		{"Müller", Capitalized},
		{"McDonald", Mixed},
		{"iPhone", Mixed},
		{"GROß", AllUpper},
		{"Straße", Capitalized},
		{"ß", AllLower},
		{"Ö", AllUpper},
		{"U\u0308bel", Capitalized}, // combining diaeresis
		{"", AllLower},
	}
	for _, tt := range tests {
		if c := Classify(tt.word); c != tt.expected {
			t.Errorf("Classify(%q) = %s; want %s", tt.word, c, tt.expected)
		}
	}
}

func TestCasingApply(t *testing.T) {
	tests := []struct {
		casing  Casing
		in, out string
	}{
		{AllLower, "AE", "ae"},
		{AllUpper, "ss", "SS"},
		{AllUpper, "ß", "SS"},
		{Capitalized, "ue", "Ue"},
		{Mixed, "xY", "xY"},
	}
	for _, tt := range tests {
		if s := tt.casing.Apply(tt.in); s != tt.out {
			t.Errorf("%s.Apply(%q) = %q; want %q", tt.casing, tt.in, s, tt.out)
		}
	}
	if Casing(99).String() != "Invalid" {
		t.Errorf("expected unknown casing to be invalid")
	}
}

func TestSpecialCharacters(t *testing.T) {
	for _, r := range "äöüÄÖÜßẞ" {
		c, ok := FromNative(r)
		if !ok {
			t.Fatalf("expected %q to be a special character", r)
		}
		if c.Native() != r {
			t.Errorf("round trip of %q yields %q", r, c.Native())
		}
		if c.IsUpper() != (c.Upper() == c) {
			t.Errorf("inconsistent upper case variant for %q", r)
		}
		if c.Lower().Upper() != c.Upper() {
			t.Errorf("inconsistent case variants for %q", r)
		}
	}
	if _, ok := FromNative('a'); ok {
		t.Errorf("'a' is not a special character")
	}
	digraphs := []struct {
		a, b     rune
		expected SpecialCharacter
		digraph  string
	}{
		{'a', 'e', LowerAE, "ae"},
		{'O', 'e', UpperOE, "Oe"},
		{'U', 'E', UpperUE, "Ue"},
		{'s', 's', LowerSS, "ss"},
		{'S', 's', UpperSS, "Ss"},
	}
	for _, d := range digraphs {
		c, ok := FromDigraph(d.a, d.b)
		if !ok || c != d.expected {
			t.Errorf("FromDigraph(%q, %q) = %s; want %s", d.a, d.b, c, d.expected)
		}
		if c.Digraph() != d.digraph {
			t.Errorf("%s.Digraph() = %q; want %q", c, c.Digraph(), d.digraph)
		}
	}
	if _, ok := FromDigraph('e', 'a'); ok {
		t.Errorf("'ea' is not a digraph")
	}
	if NoSpecial.Digraph() != "" || NoSpecial.String() != "none" {
		t.Errorf("unexpected representation of NoSpecial")
	}
}
