package german

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	input := "Grüße, Welt! müller.com 42"
	var texts []string
	var words []bool
	var sb strings.Builder
	for seg := range Segments(input) {
		texts = append(texts, seg.Text)
		words = append(words, seg.IsWord())
		assert.Equal(t, seg.Text, input[seg.Start:seg.Start+len(seg.Text)])
		sb.WriteString(seg.Text)
	}
	assert.Equal(t, []string{"Grüße", ", ", "Welt", "! ", "müller", ".", "com", " 42"}, texts)
	assert.Equal(t, []bool{true, false, true, false, true, false, true, false}, words)
	assert.Equal(t, input, sb.String())
}

func TestSegmentsEarlyExit(t *testing.T) {
	count := 0
	for range Segments("eins zwei drei") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestSegmentsGraphemes(t *testing.T) {
	input := "Mu\u0308ller" // combining diaeresis
	var segs []Segment
	for seg := range Segments(input) {
		segs = append(segs, seg)
	}
	if assert.Len(t, segs, 1) {
		w := segs[0].Word
		assert.Equal(t, 6, w.Len(), "u + U+0308 is one character")
		ch, ok := w.letters[1].special()
		assert.True(t, ok)
		assert.Equal(t, LowerUE, ch)
		assert.Equal(t, Capitalized, w.Casing)
	}
}

func TestParseWord(t *testing.T) {
	w := ParseWord("Straße")
	assert.Equal(t, "Straße", w.Text)
	assert.Equal(t, 6, w.Len())
	assert.Equal(t, Capitalized, w.Casing)
}
