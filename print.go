package catena

import (
	"io"
	"os"
	"strings"
)

// nullToken stands in for an absent payload in the rendered chain.
const nullToken = "-(null)-"

// Fprint renders the full chain containing h to w, starting from the head no
// matter which node h names. Each payload is wrapped in hyphens, absent
// payloads render as the -(null)- placeholder, and the whole sequence is
// wrapped in braces and terminated with a newline:
//
//	{-(null)--cat--dog-}
//
// Returns ErrNilNode and writes nothing if h is absent or stale. The chain is
// never modified.
func (a *Arena) Fprint(w io.Writer, h Handle) error {
	if !a.valid(h) {
		return ErrNilNode
	}
	var b strings.Builder
	b.WriteByte('{')
	for h = a.First(h); !h.IsNil(); h = a.slots[h.index].next {
		if p := a.slots[h.index].payload; p == nil {
			b.WriteString(nullToken)
		} else {
			b.WriteByte('-')
			b.WriteString(*p)
			b.WriteByte('-')
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Print renders the chain containing h to standard output. See Fprint.
func (a *Arena) Print(h Handle) error { return a.Fprint(os.Stdout, h) }
