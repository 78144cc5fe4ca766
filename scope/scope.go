package scope

import (
	"fmt"
	"strings"
)

// Kind tells whether a scope is in scope for processing or not.
type Kind uint8

const (
	// InScope marks a part which is subject to processing.
	InScope Kind = iota + 1
	// OutOfScope marks a part which is treated as immutable and view-only.
	OutOfScope
)

func (k Kind) String() string {
	switch k {
	case InScope:
		return "In"
	case OutOfScope:
		return "Out"
	}
	return "Invalid"
}

// Payload is what a scope may carry: a [View] or a [*Cow].
type Payload interface {
	String() string
	Len() int
}

// Scope is a tagged union of two variants, In and Out. An in-scope part
// carries a payload of type T, an out-of-scope part always carries a [View].
//
// Consumers are expected to use [Scope.Match] or [Fold], which force them to
// handle both variants.
type Scope[T Payload] struct {
	kind Kind
	in   T
	out  View
}

// In creates an in-scope part.
func In[T Payload](payload T) Scope[T] {
	return Scope[T]{kind: InScope, in: payload}
}

// Out creates an out-of-scope part.
func Out[T Payload](v View) Scope[T] {
	return Scope[T]{kind: OutOfScope, out: v}
}

// Kind returns the variant of s.
func (s Scope[T]) Kind() Kind {
	return s.kind
}

// Match calls exactly one of its arguments, depending on the variant of s.
func (s Scope[T]) Match(in func(T), out func(View)) {
	switch s.kind {
	case InScope:
		in(s.in)
	case OutOfScope:
		out(s.out)
	}
}

// Fold maps both variants of s to a common result type.
func Fold[T Payload, R any](s Scope[T], in func(T) R, out func(View) R) R {
	var r R
	s.Match(func(p T) { r = in(p) }, func(v View) { r = out(v) })
	return r
}

// Text returns the underlying string of s, regardless of the variant.
func (s Scope[T]) Text() string {
	return Fold(s, func(p T) string { return p.String() }, View.String)
}

// IsEmpty reports whether the payload of s has zero length.
func (s Scope[T]) IsEmpty() bool {
	return Fold(s, func(p T) bool { return p.Len() == 0 }, View.IsEmpty)
}

func (s Scope[T]) String() string {
	return fmt.Sprintf("%s(%q)", s.kind, s.Text())
}

// ROScope is a read-only scope: both variants are views onto the source.
type ROScope = Scope[View]

// RWScope is a read-write scope: in-scope parts may be edited through a
// copy-on-write string, out-of-scope parts remain views.
type RWScope = Scope[*Cow]

// ROScopes is an ordered sequence of read-only scopes covering a source text.
type ROScopes []ROScope

// Invert returns a new sequence where what was in scope is now out of scope,
// and vice versa. Payloads are untouched.
func (scopes ROScopes) Invert() ROScopes {
	tracer().Debugf("inverting scopes: %v", scopes)
	inverted := make(ROScopes, len(scopes))
	for i, s := range scopes {
		s.Match(
			func(v View) { inverted[i] = Out[View](v) },
			func(v View) { inverted[i] = In(v) },
		)
	}
	tracer().Debugf("inverted scopes: %v", inverted)
	return inverted
}

// Materialize converts read-only scopes to read-write scopes. In-scope parts
// start out as borrowed copy-on-write strings.
func (scopes ROScopes) Materialize() RWScopes {
	rw := make(RWScopes, len(scopes))
	for i, s := range scopes {
		s.Match(
			func(v View) { rw[i] = In(Borrow(v)) },
			func(v View) { rw[i] = Out[*Cow](v) },
		)
	}
	return rw
}

// String concatenates the payloads of all scopes.
func (scopes ROScopes) String() string {
	return join(scopes)
}

// RWScopes is an ordered sequence of read-write scopes.
type RWScopes []RWScope

// String concatenates the current payloads of all scopes.
func (scopes RWScopes) String() string {
	return join(scopes)
}

// Edited reports whether at least one in-scope part owns an edited buffer.
func (scopes RWScopes) Edited() bool {
	for _, s := range scopes {
		edited := Fold(s, func(c *Cow) bool { return c.Ownership() == Owned },
			func(View) bool { return false })
		if edited {
			return true
		}
	}
	return false
}

func join[T Payload](scopes []Scope[T]) string {
	n := 0
	for _, s := range scopes {
		n += Fold(s, func(p T) int { return p.Len() }, View.Len)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, s := range scopes {
		sb.WriteString(s.Text())
	}
	return sb.String()
}
