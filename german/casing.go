package german

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing is the casing class of a word.
type Casing uint8

const (
	AllLower    Casing = iota // every letter is lower case
	AllUpper                  // every letter is upper case
	Capitalized               // first letter upper case, all others lower case
	Mixed                     // anything else
)

func (c Casing) String() string {
	switch c {
	case AllLower:
		return "AllLower"
	case AllUpper:
		return "AllUpper"
	case Capitalized:
		return "Capitalized"
	case Mixed:
		return "Mixed"
	}
	return "Invalid"
}

// Apply re-cases s according to c. Mixed leaves s untouched.
//
// Capitalized upper-cases the first character only, which is what an
// expansion at the start of a capitalized word needs ("ü" → "Ue").
func (c Casing) Apply(s string) string {
	switch c {
	case AllLower:
		return cases.Lower(language.German).String(s)
	case AllUpper:
		return cases.Upper(language.German).String(s)
	case Capitalized:
		return cases.Title(language.German).String(s)
	}
	return s
}

type letterCase int8

const (
	caseNeutral letterCase = iota
	caseLower
	caseUpper
)

// caseOf classifies a single letter. ß has no common upper case form and
// does not count for classification, neither do letters without case.
func caseOf(r rune) letterCase {
	switch {
	case r == 'ß':
		return caseNeutral
	case unicode.IsUpper(r):
		return caseUpper
	case unicode.IsLower(r):
		return caseLower
	}
	return caseNeutral
}

// Classify returns the casing class of word.
func Classify(word string) Casing {
	return ParseWord(word).Casing
}

func classify(letters []letter) Casing {
	var lower, upper, upperRest int
	for i, l := range letters {
		switch caseOf(l.r) {
		case caseLower:
			lower++
		case caseUpper:
			upper++
			if i > 0 {
				upperRest++
			}
		}
	}
	switch {
	case upper == 0:
		return AllLower
	case lower == 0:
		return AllUpper
	case upperRest == 0 && caseOf(letters[0].r) == caseUpper:
		return Capitalized
	}
	return Mixed
}
