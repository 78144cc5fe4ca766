package german

import (
	"strings"
)

// Direction tells a Machine which way to convert.
type Direction uint8

const (
	Expand  Direction = iota // native glyph → digraph
	Restore                  // digraph → native glyph
)

func (d Direction) String() string {
	switch d {
	case Expand:
		return "expand"
	case Restore:
		return "restore"
	}
	return "invalid"
}

// Machine converts German special characters within texts. The zero value
// expands native glyphs. A Machine is not modified by processing, so it may
// be used concurrently.
type Machine struct {
	Direction Direction
	Resolver  Resolver // decides on candidate digraphs when restoring; nil means Heuristic
	Fallback  Decision // applied to undecided candidates; anything but Native means Literal
	NoEszett  bool     // never restore "ss" to "ß", as in Swiss orthography
}

// Outcome is the result of processing a text.
type Outcome struct {
	Text          string                   // the processed text
	Changed       bool                     // Text differs from the input
	Substitutions int                      // number of characters replaced
	Ambiguities   []*AmbiguousDigraphError // undecided candidates, with byte offsets within the input
}

// Process converts every word of text. Non-letters are copied. If nothing is
// replaced, the returned text is text itself and no memory is allocated for it.
func (m *Machine) Process(text string) Outcome {
	out := Outcome{Text: text}
	var sb strings.Builder
	last := 0
	for seg := range Segments(text) {
		if !seg.IsWord() {
			continue
		}
		replaced, n, amb := m.word(seg.Word)
		out.Ambiguities = append(out.Ambiguities, amb...)
		if n == 0 {
			continue
		}
		if !out.Changed {
			sb.Grow(len(text) + 8)
			out.Changed = true
		}
		sb.WriteString(text[last:seg.Start])
		sb.WriteString(replaced)
		last = seg.Start + len(seg.Text)
		out.Substitutions += n
	}
	if out.Changed {
		sb.WriteString(text[last:])
		out.Text = sb.String()
	}
	return out
}

func (m *Machine) word(w *Word) (string, int, []*AmbiguousDigraphError) {
	switch m.Direction {
	case Expand:
		s, n := w.expand()
		return s, n, nil
	case Restore:
		return m.restore(w)
	}
	return w.Text, 0, nil
}

func (m *Machine) resolver() Resolver {
	if m.Resolver == nil {
		return Heuristic
	}
	return m.Resolver
}

func (m *Machine) fallback() Decision {
	if m.Fallback == Native {
		return Native
	}
	return Literal
}

// --- Expand ----------------------------------------------------------------

func (w *Word) expand() (string, int) {
	var sb strings.Builder
	n, last := 0, 0
	for i, l := range w.letters {
		ch, ok := l.special()
		if !ok {
			continue
		}
		sb.WriteString(w.Text[last:l.offset])
		sb.WriteString(w.expansion(i, ch))
		last = l.end()
		n++
	}
	if n == 0 {
		return w.Text, 0
	}
	sb.WriteString(w.Text[last:])
	return sb.String(), n
}

// expansion is the digraph for the special character ch at letter position i,
// re-cased for the word.
func (w *Word) expansion(i int, ch SpecialCharacter) string {
	digraph := ch.Lower().Digraph()
	switch w.Casing {
	case AllLower:
		return AllLower.Apply(digraph)
	case AllUpper:
		return AllUpper.Apply(digraph)
	case Capitalized:
		if i == 0 {
			return Capitalized.Apply(digraph)
		}
		return AllLower.Apply(digraph)
	case Mixed:
		// only the neighbourhood of the replaced character counts
		var upperFirst, upperSecond bool
		if ch == LowerSS {
			upperFirst = w.neighboursUpper(i)
			upperSecond = upperFirst
		} else if ch.IsUpper() {
			upperFirst = true
			upperSecond = w.followingUpper(i)
		}
		switch {
		case upperFirst && upperSecond:
			return AllUpper.Apply(digraph)
		case upperFirst:
			return Capitalized.Apply(digraph)
		}
		return digraph
	}
	return digraph
}

// neighboursUpper reports whether all existing neighbours of letter i are
// upper case.
func (w *Word) neighboursUpper(i int) bool {
	seen := false
	for _, j := range [2]int{i - 1, i + 1} {
		if j < 0 || j >= len(w.letters) {
			continue
		}
		if caseOf(w.letters[j].r) != caseUpper {
			return false
		}
		seen = true
	}
	return seen
}

// followingUpper reports whether the letter after i is upper case. At the end
// of a word, the letter before i is checked instead.
func (w *Word) followingUpper(i int) bool {
	switch {
	case i+1 < len(w.letters):
		return caseOf(w.letters[i+1].r) == caseUpper
	case i > 0:
		return caseOf(w.letters[i-1].r) == caseUpper
	}
	return true
}

// --- Restore ---------------------------------------------------------------

func (m *Machine) restore(w *Word) (string, int, []*AmbiguousDigraphError) {
	var sb strings.Builder
	var amb []*AmbiguousDigraphError
	n, last := 0, 0
	for i := 0; i+1 < len(w.letters); i++ {
		c, ok := w.candidateAt(i)
		if !ok || (m.NoEszett && c.Char.IsEszett()) {
			continue
		}
		d := m.resolver().Resolve(c)
		if d == Undecided {
			d = m.fallback()
			err := &AmbiguousDigraphError{
				Word:     w.Text,
				Offset:   w.Start + c.Offset,
				Digraph:  c.Digraph,
				Fallback: d,
			}
			tracer().Infof("%s", err)
			amb = append(amb, err)
		}
		if d != Native {
			continue
		}
		sb.WriteString(w.Text[last:c.Offset])
		sb.WriteRune(c.Char.Native())
		last = c.Offset + len(c.Digraph)
		n++
		i++ // the second letter of the digraph is consumed
	}
	if n == 0 {
		return w.Text, 0, amb
	}
	sb.WriteString(w.Text[last:])
	return sb.String(), n, amb
}
