package german

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	cands := Candidates("Wasser")
	require.Len(t, cands, 1)
	assert.Equal(t, 2, cands[0].Offset)
	assert.Equal(t, "ss", cands[0].Digraph)
	assert.Equal(t, LowerSS, cands[0].Char)
	assert.Equal(t, 'a', cands[0].Before())
	//
	cands = Candidates("sss")
	require.Len(t, cands, 2, "overlapping candidates are listed")
	assert.Equal(t, 0, cands[0].Offset)
	assert.Equal(t, rune(0), cands[0].Before())
	assert.Equal(t, 1, cands[1].Offset)
	//
	cands = Candidates("Uebergroesse")
	require.Len(t, cands, 3)
	assert.Equal(t, UpperUE, cands[0].Char)
	assert.Equal(t, LowerOE, cands[1].Char)
	assert.Equal(t, LowerSS, cands[2].Char)
	//
	assert.Empty(t, Candidates("Müller"))
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		word     string
		expected Decision
	}{
		{"Quelle", Literal},
		{"neue", Literal},
		{"Bauer", Literal},
		{"Wasser", Literal},
		{"Mueller", Native},
		{"Ueber", Native},
		{"Faehre", Native},
		{"Oel", Native},
	}
	for _, tt := range tests {
		cands := Candidates(tt.word)
		require.NotEmpty(t, cands, tt.word)
		assert.Equal(t, tt.expected, Heuristic.Resolve(cands[0]), "word %q", tt.word)
	}
}

func TestWordList(t *testing.T) {
	wl := NewWordList("Müller", "Straße", "Masse", "Bauer", "Übergröße")
	m := &Machine{Direction: Restore, Resolver: wl}
	tests := []struct{ in, out string }{
		{"Mueller", "Müller"},
		{"MUELLER", "MÜLLER"},
		{"Strasse", "Straße"},
		{"Masse", "Masse"},
		{"Bauer", "Bauer"},
		{"Uebergroesse", "Übergröße"},
		{"Unbekannt", "Unbekannt"},
		{"Poet", "Poet"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, m.Process(tt.in).Text, "restoring %q", tt.in)
	}
}

func TestReadWordList(t *testing.T) {
	wl, err := ReadWordList(strings.NewReader("# words\n\nMüller\n  Straße  \n"))
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
	assert.True(t, wl.Contains("MÜLLER"))
	assert.True(t, wl.Contains("straße"))
	assert.False(t, wl.Contains("# words"))
}

func TestResolverFunc(t *testing.T) {
	calls := 0
	r := ResolverFunc(func(c Candidate) Decision {
		calls++
		return Native
	})
	m := &Machine{Direction: Restore, Resolver: r}
	assert.Equal(t, "Übel öde", m.Process("Uebel oede").Text)
	assert.Equal(t, 2, calls, "resolver is called once per candidate")
}
