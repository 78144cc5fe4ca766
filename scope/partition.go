package scope

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// FromRawRanges partitions input according to ranges: every range becomes an
// in-scope part, everything not covered by a range is out of scope.
//
// Ranges may arrive in any order; they are sorted by start position, ties
// keeping their original order. Empty ranges are allowed and do not produce a
// scope. Ranges touching each other are fine, overlapping ranges are rejected
// with an error wrapping ErrOverlappingRanges. Ranges out of bounds or not
// starting and ending on a character boundary are rejected with an error
// wrapping ErrInvalidRange. In both cases no scopes are returned.
//
// The resulting sequence contains no empty scopes, and concatenating its
// payloads reproduces input.
func FromRawRanges(input string, ranges []Range) (ROScopes, error) {
	for _, r := range ranges {
		if err := validate(input, r); err != nil {
			return nil, err
		}
	}
	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})
	scopes := make(ROScopes, 0, 2*len(sorted)+1)
	lastEnd, last := 0, Range{}
	for _, r := range sorted {
		if r.Len() == 0 {
			continue
		}
		if r.Start < lastEnd {
			return nil, overlappingRanges(r, last, len(input))
		}
		scopes = append(scopes, Out[View](View{input, lastEnd, r.Start}))
		scopes = append(scopes, In(View{input, r.Start, r.End}))
		lastEnd, last = r.End, r
	}
	if lastEnd < len(input) {
		scopes = append(scopes, Out[View](View{input, lastEnd, len(input)}))
	}
	scopes = slices.DeleteFunc(scopes, ROScope.IsEmpty)
	tracer().Debugf("scopes: %v", scopes)
	return scopes, nil
}

// Whole returns a single in-scope part covering all of input, or no scope at
// all if input is empty.
func Whole(input string) ROScopes {
	if input == "" {
		return ROScopes{}
	}
	return ROScopes{In(ViewOf(input))}
}

func validate(input string, r Range) error {
	n := len(input)
	switch {
	case r.Start < 0 || r.End > n:
		return invalidRange(r, n, "out of bounds")
	case r.Start > r.End:
		return invalidRange(r, n, "start after end")
	case !isBoundary(input, r.Start):
		return invalidRange(r, n, "start is not on a character boundary")
	case !isBoundary(input, r.End):
		return invalidRange(r, n, "end is not on a character boundary")
	}
	return nil
}

func isBoundary(s string, i int) bool {
	return i == 0 || i == len(s) || utf8.RuneStart(s[i])
}
