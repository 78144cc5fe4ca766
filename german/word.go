package german

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// letter is a single grapheme cluster of a word.
type letter struct {
	offset int    // byte offset within the word
	text   string // the cluster as found in the source
	r      rune   // the NFC-composed rune, or the first rune if the cluster does not compose to one
	single bool   // the cluster composes to exactly one rune
}

func (l letter) end() int {
	return l.offset + len(l.text)
}

// special returns the special character l stands for, if any.
func (l letter) special() (SpecialCharacter, bool) {
	if !l.single {
		return NoSpecial, false
	}
	return FromNative(l.r)
}

// ascii reports whether l is a plain ASCII letter, a candidate for digraphs.
func (l letter) ascii() bool {
	return l.single && l.r < utf8.RuneSelf && len(l.text) == 1
}

func newLetter(offset int, cluster string) letter {
	composed := norm.NFC.String(cluster)
	r, size := utf8.DecodeRuneInString(composed)
	return letter{
		offset: offset,
		text:   cluster,
		r:      r,
		single: size == len(composed),
	}
}

// Word is a maximal run of letters.
type Word struct {
	Text    string // the word as found in the source
	Start   int    // byte offset of the word within the segmented text
	Casing  Casing // casing class of the word
	letters []letter
}

// Len returns the number of characters (grapheme clusters) of w.
func (w Word) Len() int {
	return len(w.letters)
}

// ParseWord treats all of s as a single word, whether or not it consists of
// letters only.
func ParseWord(s string) Word {
	w := Word{Text: s}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		w.letters = append(w.letters, newLetter(from, g.Str()))
	}
	w.Casing = classify(w.letters)
	return w
}

// Segment is either a word or a run of non-letter characters.
type Segment struct {
	Text  string // the segment as found in the source
	Start int    // byte offset of the segment within the segmented text
	Word  *Word  // nil for separators
}

// IsWord reports whether s is a word.
func (s Segment) IsWord() bool {
	return s.Word != nil
}

// Segments splits text into words and separators. Concatenating all segments
// reproduces text.
func Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var word *Word
		start := 0
		inWord := false
		emit := func(end int) bool {
			if end == start {
				return true
			}
			seg := Segment{Text: text[start:end], Start: start}
			if inWord {
				word.Text = seg.Text
				word.Casing = classify(word.letters)
				seg.Word = word
			}
			return yield(seg)
		}
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			from, _ := g.Positions()
			cluster := g.Str()
			r, _ := utf8.DecodeRuneInString(cluster)
			isLetter := unicode.IsLetter(r)
			if isLetter != inWord {
				if !emit(from) {
					return
				}
				start, inWord = from, isLetter
				if isLetter {
					word = &Word{Start: from}
				}
			}
			if isLetter {
				word.letters = append(word.letters, newLetter(from-start, cluster))
			}
		}
		emit(len(text))
	}
}
