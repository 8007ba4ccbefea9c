// Package catena implements a doubly-linked chain of nodes holding optional,
// caller-owned string payloads.
//
// The chain follows a link metaphor: there is no separate list object. Every
// node is an equally good handle to the whole structure, and any handle can be
// used to reach the head, count the chain, or render it. Nodes live inside an
// Arena, which owns their storage; payload strings are only ever borrowed, so
// removing a node hands its payload back to the caller instead of destroying
// it.
//
// Handles are generation-checked arena indices rather than raw pointers. A
// handle kept across a Remove goes stale, and every operation reports it as
// invalid instead of touching freed or reused storage.
package catena

// Handle names one node in an Arena. The zero value is the absent handle.
//
// A Handle stays valid until the node it names is removed. After that it is
// stale: operations given a stale handle fail the same way as for Nil, even
// if the underlying slot has since been reused for another node.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the absent handle, the zero value of Handle.
var Nil = Handle{}

// IsNil reports whether h is the absent handle.
func (h Handle) IsNil() bool { return h.gen == 0 }

type slot struct {
	payload *string
	next    Handle
	prev    Handle
	// gen is odd while the slot holds a live node. Freeing the slot bumps it
	// (staling every handle issued for the old node) and reusing it bumps it
	// again.
	gen uint32
}

// Arena owns the storage for chain nodes. Chains built in one arena must not
// be mixed with handles from another.
//
// Arena is not safe for concurrent use; callers must serialize access.
type Arena struct {
	slots []slot
	free  []uint32
	limit int
	live  int
}

// New returns an arena that grows as nodes are created.
func New() *Arena { return &Arena{} }

// NewFixed returns an arena with a fixed pool of capacity node slots. Once
// the pool is exhausted, Create and InsertAfter fail with ErrFull until a
// node is removed.
func NewFixed(capacity int) *Arena {
	return &Arena{slots: make([]slot, 0, capacity), limit: capacity}
}

// Len returns the number of live nodes in the arena, across all chains.
func (a *Arena) Len() int { return a.live }

func (a *Arena) valid(h Handle) bool {
	return h.gen&1 == 1 && int(h.index) < len(a.slots) && a.slots[h.index].gen == h.gen
}

func (a *Arena) alloc(payload *string) (Handle, error) {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.gen++
		s.payload = payload
		a.live++
		return Handle{index: i, gen: s.gen}, nil
	}
	if a.limit > 0 && len(a.slots) == a.limit {
		return Nil, ErrFull
	}
	a.slots = append(a.slots, slot{payload: payload, gen: 1})
	a.live++
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}, nil
}

// Create allocates a standalone node holding payload, which may be nil. The
// node has no neighbors until it is spliced to or extended with InsertAfter.
// Returns ErrFull if a fixed arena has no slot left.
//
// The arena stores only the payload pointer; the string stays owned by the
// caller.
func (a *Arena) Create(payload *string) (Handle, error) {
	return a.alloc(payload)
}

// InsertAfter allocates a new node holding payload and splices it immediately
// following h. If h has no successor the new node becomes the tail; otherwise
// it ends up between h and h's former successor.
//
// Returns ErrNilNode if h is absent or stale, and ErrFull if a fixed arena is
// out of slots. On failure the chain is left unmodified.
func (a *Arena) InsertAfter(h Handle, payload *string) (Handle, error) {
	if !a.valid(h) {
		return Nil, ErrNilNode
	}
	n, err := a.alloc(payload)
	if err != nil {
		return Nil, err
	}
	// Take slot pointers only after alloc: it may grow the slice.
	node := &a.slots[n.index]
	mark := &a.slots[h.index]
	node.prev = h
	node.next = mark.next
	if !mark.next.IsNil() {
		a.slots[mark.next.index].prev = n
	}
	mark.next = n
	return n, nil
}

// Remove unlinks the node named by h from its neighbors, releases its slot,
// and returns the payload it held so the caller can manage it. The payload
// may be nil. Every handle to the removed node is stale afterwards.
//
// Returns ErrNilNode without mutating anything if h is absent or stale.
func (a *Arena) Remove(h Handle) (*string, error) {
	if !a.valid(h) {
		return nil, ErrNilNode
	}
	s := &a.slots[h.index]
	if !s.prev.IsNil() {
		a.slots[s.prev.index].next = s.next
	}
	if !s.next.IsNil() {
		a.slots[s.next.index].prev = s.prev
	}
	payload := s.payload
	*s = slot{gen: s.gen + 1}
	a.free = append(a.free, h.index)
	a.live--
	return payload, nil
}

// First returns the head of the chain containing h, found by walking prev
// links. Given the head it returns the head. Given the nil handle or a stale
// one it returns Nil.
func (a *Arena) First(h Handle) Handle {
	if !a.valid(h) {
		return Nil
	}
	for {
		prev := a.slots[h.index].prev
		if prev.IsNil() {
			return h
		}
		h = prev
	}
}

// Size returns the number of nodes in the chain containing h, regardless of
// which node of the chain h names. Returns 0 for an absent or stale handle.
func (a *Arena) Size(h Handle) int {
	count := 0
	for h = a.First(h); !h.IsNil(); h = a.slots[h.index].next {
		count++
	}
	return count
}

// Next returns the successor of h, or Nil at the tail or for an invalid h.
func (a *Arena) Next(h Handle) Handle {
	if !a.valid(h) {
		return Nil
	}
	return a.slots[h.index].next
}

// Prev returns the predecessor of h, or Nil at the head or for an invalid h.
func (a *Arena) Prev(h Handle) Handle {
	if !a.valid(h) {
		return Nil
	}
	return a.slots[h.index].prev
}

// Payload returns the payload held by h, which may be nil. Returns nil for an
// absent or stale handle as well; use valid handles if the distinction
// matters.
func (a *Arena) Payload(h Handle) *string {
	if !a.valid(h) {
		return nil
	}
	return a.slots[h.index].payload
}

// Reset releases every node in the arena. All outstanding handles go stale.
// Payload strings are not touched; they remain owned by the callers that
// supplied them.
func (a *Arena) Reset() {
	for i := range a.slots {
		if a.slots[i].gen&1 == 1 {
			a.slots[i] = slot{gen: a.slots[i].gen + 1}
			a.free = append(a.free, uint32(i))
		}
	}
	a.live = 0
}
