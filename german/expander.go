package german

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Expander is a transform.Transformer expanding native glyphs to digraphs.
// It may be chained with other transformers, e.g. norm.NFC.
//
// Words are never split across calls: if src ends within a word and more
// input is to come, the word is left for the next call. Words longer than the
// caller's source buffer therefore result in transform.ErrShortSrc.
type Expander struct {
	transform.NopResetter
	m Machine
}

// NewExpander creates a streaming expander.
func NewExpander() *Expander {
	return &Expander{m: Machine{Direction: Expand}}
}

// Transform implements transform.Transformer.
func (e *Expander) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if !atEOF {
		n = safePrefix(src)
	}
	for seg := range Segments(string(src[:n])) {
		out := seg.Text
		if seg.IsWord() {
			out, _, _ = e.m.word(seg.Word)
		}
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += len(seg.Text)
	}
	if nSrc < len(src) {
		err = transform.ErrShortSrc
	}
	return nDst, nSrc, err
}

// safePrefix returns the length of the longest prefix of src which neither
// ends in an incomplete UTF-8 sequence nor within a word.
func safePrefix(src []byte) int {
	n := len(src)
	for i := n - 1; i >= 0 && i >= n-utf8.UTFMax; i-- {
		if utf8.RuneStart(src[i]) {
			if !utf8.FullRune(src[i:n]) {
				n = i
			}
			break
		}
	}
	last := 0
	for seg := range Segments(string(src[:n])) {
		last = seg.Start
		if !seg.IsWord() {
			last += len(seg.Text)
		}
	}
	return last
}
