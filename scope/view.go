package scope

import "fmt"

// View is a read-only window onto a source string. Views are index ranges
// into the source and never copy it.
type View struct {
	source     string
	start, end int
}

// ViewOf returns a view of the complete string s.
func ViewOf(s string) View {
	return View{source: s, start: 0, end: len(s)}
}

// String returns the viewed part of the source. No copy is made.
func (v View) String() string {
	return v.source[v.start:v.end]
}

// Len returns the byte length of the view.
func (v View) Len() int {
	return v.end - v.start
}

// IsEmpty reports whether the view has zero length.
func (v View) IsEmpty() bool {
	return v.start == v.end
}

// Span returns the byte offsets of the view within its source.
func (v View) Span() Range {
	return Range{Start: v.start, End: v.end}
}

// GoString is for debugging output of scope sequences.
func (v View) GoString() string {
	return fmt.Sprintf("%q@%d", v.String(), v.start)
}

// Range is a half-open byte range [Start, End) of a string.
type Range struct {
	Start, End int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Len returns the byte length of r.
func (r Range) Len() int {
	return r.End - r.Start
}
