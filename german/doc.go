/*
Package german rewrites German special characters, umlauts and eszett.

Each of ä, ö, ü, Ä, Ö, Ü, ß and ẞ has two surface encodings: the native glyph
and a two-letter ASCII digraph (ae, oe, ue, ss). A [Machine] walks the words of
a text and converts between them in one of two directions:

▪︎ [Expand] replaces native glyphs by digraphs. This is unambiguous.

▪︎ [Restore] replaces digraphs by native glyphs. This is inherently ambiguous,
as many German words contain these letter pairs without meaning an umlaut
(think of "Quelle" or "neue"). Every candidate digraph is presented to a
[Resolver], which decides between keeping the letters and using the native
glyph.

Words are maximal runs of letters. Scanning is grapheme-aware: a base letter
followed by a combining diaeresis counts as one character. Each word is
classified by its [Casing] before substitution, and multi-character
replacements are re-cased accordingly, so "Übermut" becomes "Uebermut" and
"GROß" becomes "GROSS".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package german

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'eszett.german'
func tracer() tracing.Trace {
	return tracing.Select("eszett.german")
}
