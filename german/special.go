package german

import "unicode"

// SpecialCharacter is one of the German special characters.
type SpecialCharacter uint8

const (
	NoSpecial SpecialCharacter = iota // not a special character
	LowerAE                    // ä
	LowerOE                    // ö
	LowerUE                    // ü
	UpperAE                    // Ä
	UpperOE                    // Ö
	UpperUE                    // Ü
	LowerSS                    // ß
	UpperSS                    // ẞ, rarely used
)

var specials = [...]struct {
	native rune
	base   rune // first letter of the digraph, lower case
	second rune // second letter of the digraph, lower case
	upper  bool
}{
	NoSpecial: {0, 0, 0, false},
	LowerAE:   {'ä', 'a', 'e', false},
	LowerOE:   {'ö', 'o', 'e', false},
	LowerUE:   {'ü', 'u', 'e', false},
	UpperAE:   {'Ä', 'a', 'e', true},
	UpperOE:   {'Ö', 'o', 'e', true},
	UpperUE:   {'Ü', 'u', 'e', true},
	LowerSS:   {'ß', 's', 's', false},
	UpperSS:   {'ẞ', 's', 's', true},
}

// FromNative returns the special character for a native glyph.
func FromNative(r rune) (SpecialCharacter, bool) {
	for c := LowerAE; c <= UpperSS; c++ {
		if specials[c].native == r {
			return c, true
		}
	}
	return NoSpecial, false
}

// FromDigraph returns the special character encoded by the letters a and b,
// if any. Letters are compared case-insensitively; the result is upper case
// if a is upper case.
func FromDigraph(a, b rune) (SpecialCharacter, bool) {
	la, lb := unicode.ToLower(a), unicode.ToLower(b)
	for _, c := range [...]SpecialCharacter{LowerAE, LowerOE, LowerUE, LowerSS} {
		if specials[c].base == la && specials[c].second == lb {
			if unicode.IsUpper(a) {
				return c.Upper(), true
			}
			return c, true
		}
	}
	return NoSpecial, false
}

// Native returns the native glyph of c.
func (c SpecialCharacter) Native() rune {
	return specials[c].native
}

// Digraph returns the ASCII encoding of c, with the first letter capitalized
// for upper case characters.
func (c SpecialCharacter) Digraph() string {
	if c == NoSpecial {
		return ""
	}
	s := specials[c]
	if s.upper {
		return string([]rune{unicode.ToUpper(s.base), s.second})
	}
	return string([]rune{s.base, s.second})
}

// IsUpper reports whether c is an upper case character.
func (c SpecialCharacter) IsUpper() bool {
	return specials[c].upper
}

// IsEszett reports whether c is ß or ẞ.
func (c SpecialCharacter) IsEszett() bool {
	return c == LowerSS || c == UpperSS
}

// Upper returns the upper case variant of c.
func (c SpecialCharacter) Upper() SpecialCharacter {
	switch c {
	case LowerAE:
		return UpperAE
	case LowerOE:
		return UpperOE
	case LowerUE:
		return UpperUE
	case LowerSS:
		return UpperSS
	}
	return c
}

// Lower returns the lower case variant of c.
func (c SpecialCharacter) Lower() SpecialCharacter {
	switch c {
	case UpperAE:
		return LowerAE
	case UpperOE:
		return LowerOE
	case UpperUE:
		return LowerUE
	case UpperSS:
		return LowerSS
	}
	return c
}

func (c SpecialCharacter) String() string {
	if c == NoSpecial {
		return "none"
	}
	return string(c.Native())
}
