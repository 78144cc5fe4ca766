package german

import "fmt"

// AmbiguousDigraphError reports a candidate digraph a resolver could not
// decide on. It is informational: the machine has already applied its
// fallback decision.
type AmbiguousDigraphError struct {
	Word     string   // the word containing the digraph
	Offset   int      // byte offset of the digraph within the processed text
	Digraph  string   // the digraph as found in the source
	Fallback Decision // the decision applied instead
}

// Error implements the error interface.
func (e *AmbiguousDigraphError) Error() string {
	return fmt.Sprintf("german: ambiguous digraph %q in word %q at offset %d, resolved as %s",
		e.Digraph, e.Word, e.Offset, e.Fallback)
}
