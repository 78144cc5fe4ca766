package german

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func TestExpanderString(t *testing.T) {
	s, _, err := transform.String(NewExpander(), "Grüße aus Köln")
	require.NoError(t, err)
	assert.Equal(t, "Gruesse aus Koeln", s)
}

func TestExpanderChain(t *testing.T) {
	s, _, err := transform.String(transform.Chain(norm.NFC, NewExpander()), "Mu\u0308ller")
	require.NoError(t, err)
	assert.Equal(t, "Mueller", s)
}

func TestExpanderKeepsIncompleteWords(t *testing.T) {
	dst := make([]byte, 64)
	src := []byte("Grüße au")
	nDst, nSrc, err := NewExpander().Transform(dst, src, false)
	assert.ErrorIs(t, err, transform.ErrShortSrc)
	assert.Equal(t, len("Grüße "), nSrc)
	assert.Equal(t, "Gruesse ", string(dst[:nDst]))
}

func TestExpanderIncompleteRune(t *testing.T) {
	dst := make([]byte, 64)
	src := []byte("a ü")
	src = src[:len(src)-1]
	nDst, nSrc, err := NewExpander().Transform(dst, src, false)
	assert.ErrorIs(t, err, transform.ErrShortSrc)
	assert.Equal(t, 2, nSrc)
	assert.Equal(t, "a ", string(dst[:nDst]))
}

func TestExpanderShortDst(t *testing.T) {
	dst := make([]byte, 3)
	nDst, nSrc, err := NewExpander().Transform(dst, []byte("Köln"), true)
	assert.ErrorIs(t, err, transform.ErrShortDst)
	assert.Zero(t, nDst)
	assert.Zero(t, nSrc)
}

func TestExpanderReader(t *testing.T) {
	text := strings.Repeat("Fußgänger überqueren die Straße. ", 500)
	r := transform.NewReader(strings.NewReader(text), NewExpander())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("Fussgaenger ueberqueren die Strasse. ", 500), string(b))
}
