package german

import (
	"bufio"
	"io"
	"math/bits"
	"slices"
	"strings"
	"unicode"
)

// Decision is a resolver's verdict for a candidate digraph.
type Decision uint8

const (
	Literal   Decision = iota // keep the two letters
	Native                    // replace the digraph by the native glyph
	Undecided                 // ambiguous; the machine's fallback decides
)

func (d Decision) String() string {
	switch d {
	case Literal:
		return "literal"
	case Native:
		return "native"
	case Undecided:
		return "undecided"
	}
	return "invalid"
}

// Candidate is a digraph within a word which may encode a native character.
type Candidate struct {
	Word    string           // the complete word, as found in the source
	Offset  int              // byte offset of the digraph within Word
	Digraph string           // the two letters, as found in the source
	Char    SpecialCharacter // the character the digraph would stand for
}

// Before returns the letter immediately preceding the digraph, or 0.
func (c Candidate) Before() rune {
	prefix := c.Word[:c.Offset]
	if prefix == "" {
		return 0
	}
	rs := []rune(prefix)
	return rs[len(rs)-1]
}

// Resolver decides whether a candidate digraph is to be restored to its
// native glyph. Resolvers are called once per candidate, in reading order.
type Resolver interface {
	Resolve(Candidate) Decision
}

// ResolverFunc is an adapter to use ordinary functions as resolvers.
type ResolverFunc func(Candidate) Decision

// Resolve calls f(c).
func (f ResolverFunc) Resolve(c Candidate) Decision {
	return f(c)
}

var (
	// PreferNative restores every candidate.
	PreferNative Resolver = ResolverFunc(func(Candidate) Decision { return Native })
	// PreferLiteral restores nothing.
	PreferLiteral Resolver = ResolverFunc(func(Candidate) Decision { return Literal })
	// Ambiguous leaves every decision to the fallback, reporting each candidate.
	Ambiguous Resolver = ResolverFunc(func(Candidate) Decision { return Undecided })
	// Heuristic is the default resolver. It keeps "ss" as well as "ue" after
	// q, a or e ("Quelle", "Bauer", "neue"), and "ae"/"oe" after a vowel; all
	// other candidates are restored.
	Heuristic Resolver = ResolverFunc(heuristic)
)

func heuristic(c Candidate) Decision {
	before := unicode.ToLower(c.Before())
	switch c.Char.Lower() {
	case LowerSS:
		return Literal
	case LowerUE:
		if strings.ContainsRune("qae", before) {
			return Literal
		}
	case LowerAE, LowerOE:
		if strings.ContainsRune("aeiou", before) {
			return Literal
		}
	}
	return Native
}

// Candidates returns every digraph of word which may encode a native
// character, including overlapping ones ("sss" has two).
func Candidates(word string) []Candidate {
	return ParseWord(word).candidates()
}

func (w Word) candidates() []Candidate {
	var cands []Candidate
	for i := 0; i+1 < len(w.letters); i++ {
		if c, ok := w.candidateAt(i); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

func (w Word) candidateAt(i int) (Candidate, bool) {
	a, b := w.letters[i], w.letters[i+1]
	if !a.ascii() || !b.ascii() {
		return Candidate{}, false
	}
	ch, ok := FromDigraph(a.r, b.r)
	if !ok {
		return Candidate{}, false
	}
	return Candidate{
		Word:    w.Text,
		Offset:  a.offset,
		Digraph: w.Text[a.offset:b.end()],
		Char:    ch,
	}, true
}

// maxCombinations limits the number of candidates per word a WordList will
// try in combination.
const maxCombinations = 12

// WordList is a resolver backed by a list of correctly spelled words. For a
// word, it tries combinations of restored candidates, most restorations first,
// and restores the candidates of the first combination found in the list.
// If no combination matches, all candidates stay literal.
type WordList struct {
	words map[string]struct{}
}

// NewWordList creates a word list resolver from natively spelled words.
func NewWordList(words ...string) *WordList {
	wl := &WordList{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		wl.Add(w)
	}
	return wl
}

// ReadWordList reads one word per line. Empty lines and lines starting with
// '#' are skipped.
func ReadWordList(r io.Reader) (*WordList, error) {
	wl := NewWordList()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wl.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("read word list with %d entries", wl.Len())
	return wl, nil
}

// Add puts word into the list. Lookups are case-insensitive.
func (wl *WordList) Add(word string) {
	wl.words[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word is in the list, ignoring case.
func (wl *WordList) Contains(word string) bool {
	_, ok := wl.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the list.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Resolve implements Resolver.
func (wl *WordList) Resolve(c Candidate) Decision {
	cands := Candidates(c.Word)
	chosen, ok := wl.bestCombination(c.Word, cands)
	if !ok {
		return Literal
	}
	for i, x := range cands {
		if x.Offset == c.Offset && chosen&(1<<i) != 0 {
			return Native
		}
	}
	return Literal
}

// bestCombination returns a bitmask of the candidates to restore.
func (wl *WordList) bestCombination(word string, cands []Candidate) (uint32, bool) {
	if len(cands) == 0 || len(cands) > maxCombinations {
		return 0, false
	}
	masks := make([]uint32, 0, 1<<len(cands))
	for m := uint32(1); m < 1<<len(cands); m++ {
		if !overlapping(cands, m) {
			masks = append(masks, m)
		}
	}
	slices.SortStableFunc(masks, func(a, b uint32) int {
		return bits.OnesCount32(b) - bits.OnesCount32(a)
	})
	for _, m := range masks {
		if wl.Contains(spell(word, cands, m)) {
			return m, true
		}
	}
	return 0, false
}

func overlapping(cands []Candidate, mask uint32) bool {
	end := -1
	for i, c := range cands {
		if mask&(1<<i) == 0 {
			continue
		}
		if c.Offset < end {
			return true
		}
		end = c.Offset + len(c.Digraph)
	}
	return false
}

func spell(word string, cands []Candidate, mask uint32) string {
	var sb strings.Builder
	last := 0
	for i, c := range cands {
		if mask&(1<<i) == 0 {
			continue
		}
		sb.WriteString(word[last:c.Offset])
		sb.WriteRune(c.Char.Native())
		last = c.Offset + len(c.Digraph)
	}
	sb.WriteString(word[last:])
	return sb.String()
}
