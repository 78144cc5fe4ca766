package scope

// Ownership tells whether a copy-on-write string still borrows from the source.
type Ownership uint8

const (
	// Borrowed means the payload is still a view onto the source.
	Borrowed Ownership = iota
	// Owned means the payload has been replaced by an independent buffer.
	Owned
)

func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}
	return "borrowed"
}

// Cow is a copy-on-write string. It starts out borrowing a view and switches
// to an owned buffer on the first edit.
type Cow struct {
	view  View
	owned string
	state Ownership
}

// Borrow creates a copy-on-write string borrowing v.
func Borrow(v View) *Cow {
	return &Cow{view: v}
}

// String returns the current content.
func (c *Cow) String() string {
	if c.state == Owned {
		return c.owned
	}
	return c.view.String()
}

// Len returns the byte length of the current content.
func (c *Cow) Len() int {
	if c.state == Owned {
		return len(c.owned)
	}
	return c.view.Len()
}

// Ownership returns the current ownership state of c.
func (c *Cow) Ownership() Ownership {
	return c.state
}

// Origin returns the view c has been created from. It is unaffected by edits.
func (c *Cow) Origin() View {
	return c.view
}

// Set replaces the content of c. c takes ownership of s.
func (c *Cow) Set(s string) {
	c.owned = s
	c.state = Owned
}

// Edit calls f with the current content. If f reports a change, its result
// replaces the content; otherwise c stays as it is, borrowed or not.
func (c *Cow) Edit(f func(string) (string, bool)) bool {
	s, changed := f(c.String())
	if changed {
		c.Set(s)
	}
	return changed
}
