package catena

// SwapData exchanges the payloads held by two nodes. Node identity and chain
// position are untouched; only the content moves, which is how Sort reorders
// a chain without relinking it.
//
// Both handles must name live nodes, otherwise SwapData returns ErrNilNode
// and swaps nothing. Absent payloads are swapped like any other: the absence
// simply moves with the pointer.
func (a *Arena) SwapData(x, y Handle) error {
	if !a.valid(x) || !a.valid(y) {
		return ErrNilNode
	}
	sx, sy := &a.slots[x.index], &a.slots[y.index]
	sx.payload, sy.payload = sy.payload, sx.payload
	return nil
}

// Sort reorders the payloads of the entire chain containing h into ascending
// order: first by payload length, with absent payloads counting as length 0,
// then bytewise for equal lengths. So the chain [dog, cat, duck, goat, nil]
// sorts to [nil, cat, dog, duck, goat].
//
// The sort is a selection sort that swaps payloads between fixed node
// positions; no node is relinked, so handles keep naming the same positions
// but may hold different payloads afterwards.
//
// Returns ErrNilNode and leaves the chain unchanged if h is absent or stale.
func (a *Arena) Sort(h Handle) error {
	if !a.valid(h) {
		return ErrNilNode
	}
	for sel := a.First(h); !a.Next(sel).IsNil(); sel = a.Next(sel) {
		for cmp := a.Next(sel); !cmp.IsNil(); cmp = a.Next(cmp) {
			sp := a.slots[sel.index].payload
			if sp == nil {
				// Already minimal, nothing later can displace it.
				break
			}
			cp := a.slots[cmp.index].payload
			if cp == nil || payloadLess(cp, sp) {
				a.SwapData(sel, cmp)
			}
		}
	}
	return nil
}

func payloadLess(x, y *string) bool {
	if len(*x) != len(*y) {
		return len(*x) < len(*y)
	}
	return *x < *y
}
