/*
Package eszett selectively rewrites German special characters (umlauts and
eszett) within a text, leaving caller-designated regions untouched.

A call to [Transform] gets a text, a set of byte ranges and a direction:

▪︎ [Expand] replaces native glyphs by their ASCII digraphs ("Müller" → "Mueller",
"GROß" → "GROSS").

▪︎ [Restore] replaces digraphs by native glyphs, consulting a resolver for every
candidate, as restoring is ambiguous ("Quelle" is no "Qülle").

By default the ranges mark regions to exclude from processing, such as URLs
or code spans; these are copied to the output byte for byte. With
[WithRestrict] the ranges mark the only regions to process instead.
Without any ranges the whole text is processed.

The scope model lives in package scope, the character machine in package
german; this package wires them together.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eszett

import (
	"github.com/npillmayer/eszett/german"
	"github.com/npillmayer/eszett/scope"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eszett'
func tracer() tracing.Trace {
	return tracing.Select("eszett")
}

// Direction tells Transform which way to convert.
type Direction = german.Direction

const (
	Expand  = german.Expand  // native glyph → digraph
	Restore = german.Restore // digraph → native glyph
)

// Range is a half-open byte range of the input text.
type Range = scope.Range

// Result is the detailed outcome of a transformation.
type Result struct {
	Text          string                          // the transformed text
	Changed       bool                            // Text differs from the input
	Substitutions int                             // number of characters replaced
	Ambiguities   []*german.AmbiguousDigraphError // undecided digraphs, offsets relative to the input
}

// Transform converts German special characters of text in direction dir.
// Ranges which are not on character boundaries or out of bounds result in an
// error wrapping scope.ErrInvalidRange, overlapping ranges in an error
// wrapping scope.ErrOverlappingRanges. No partial output is returned in
// either case.
func Transform(text string, ranges []Range, dir Direction, opts ...Option) (string, error) {
	res, err := TransformResult(text, ranges, dir, opts...)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// TransformResult is like Transform, but reports details about the
// transformation.
func TransformResult(text string, ranges []Range, dir Direction, opts ...Option) (Result, error) {
	cfg := newConfig(opts)
	scopes, err := cfg.scopes(text, ranges)
	if err != nil {
		return Result{}, err
	}
	m := cfg.machine(dir)
	rw := scopes.Materialize()
	var res Result
	for _, s := range rw {
		s.Match(
			func(c *scope.Cow) {
				out := m.Process(c.String())
				base := c.Origin().Span().Start
				for _, amb := range out.Ambiguities {
					amb.Offset += base
				}
				res.Ambiguities = append(res.Ambiguities, out.Ambiguities...)
				res.Substitutions += out.Substitutions
				if out.Changed {
					c.Set(out.Text)
				}
			},
			func(scope.View) {},
		)
	}
	res.Changed = rw.Edited()
	if res.Changed {
		res.Text = rw.String()
	} else {
		res.Text = text
	}
	tracer().Debugf("%s: %d scopes, %d substitutions, %d ambiguities",
		dir, len(rw), res.Substitutions, len(res.Ambiguities))
	return res, nil
}
