package hextree

// node is either a leaf carrying a value or a parent with up to seven
// children, one per digit. It's a flat struct with a boolean discriminant
// rather than an interface, so a leaf never pays for an interface's heap
// indirection or dynamic dispatch.
type node[V any] struct {
	value    V
	isLeaf   bool
	children [7]*node[V]
}

func newParent[V any]() *node[V] {
	return &node[V]{}
}

func newLeaf[V any](value V) *node[V] {
	return &node[V]{value: value, isLeaf: true}
}

// leafCount recursively counts the leaves in this subtree. It is only
// called on the localized subtree being replaced by an insert or a
// compaction, never on the whole tree, so HexTreeMap.Len can stay an O(1)
// read of a running counter instead of a full-tree walk.
func (n *node[V]) leafCount() int {
	if n.isLeaf {
		return 1
	}
	count := 0
	for _, c := range n.children {
		if c != nil {
			count += c.leafCount()
		}
	}
	return count
}

// insert descends *np along digits, creating parents on demand, and on
// unwind calls coalesce at every visited parent, deepest first. It returns
// the signed change in leaf count so the caller can keep a running total.
//
// If digits are exhausted, *np is unconditionally replaced with a new leaf,
// even when it held a parent with its own nested leaves: a cell whose
// digits run out always wins outright, dropping whatever was below it. If
// digits remain and *np is already a leaf, the insert is silently dropped:
// an existing ancestor leaf is never displaced by a more specific one.
func insert[V any, C Compactor[V]](np **node[V], cell Cell, res uint8, digits *Digits, value V, compactor C) int {
	if *np == nil {
		*np = newParent[V]()
	}
	digit, ok := digits.Next()
	if !ok {
		old := (*np).leafCount()
		*np = newLeaf(value)
		return 1 - old
	}
	n := *np
	if n.isLeaf {
		return 0
	}
	delta := insert(&n.children[digit], cell, res+1, digits, value, compactor)
	delta += coalesce(n, cell, res, compactor)
	return delta
}

// coalesce offers the compactor a chance to collapse n, the parent at
// resolution res covering cell, into a single leaf. It only fires when
// every present child of n is itself a leaf; a present child that is
// still a subtree blocks coalescing even if the compactor would accept.
func coalesce[V any, C Compactor[V]](n *node[V], cell Cell, res uint8, compactor C) int {
	for _, c := range n.children {
		if c != nil && !c.isLeaf {
			return 0
		}
	}
	var arr [7]*V
	for i, c := range n.children {
		if c != nil {
			arr[i] = &c.value
		}
	}
	nodeCell, _ := cell.ToParent(res)
	v, ok := compactor.Compact(nodeCell, arr)
	if !ok {
		return 0
	}
	old := n.leafCount()
	n.isLeaf = true
	n.value = v
	n.children = [7]*node[V]{}
	return 1 - old
}

// contains reports whether descent along digits hits a leaf at or before
// the digits are exhausted.
func (n *node[V]) contains(digits *Digits) bool {
	if n.isLeaf {
		return true
	}
	digit, ok := digits.Next()
	if !ok {
		return false
	}
	child := n.children[digit]
	if child == nil {
		return false
	}
	return child.contains(digits)
}

// get descends along digits starting at resolution res, returning the
// first leaf's value and the resolution at which it was found. The same
// pointer backs both read-only and mutating access, since Go has no
// separate shared/exclusive reference types to distinguish them.
func (n *node[V]) get(digits *Digits, res uint8) (*V, uint8, bool) {
	if n.isLeaf {
		return &n.value, res, true
	}
	digit, ok := digits.Next()
	if !ok {
		return nil, 0, false
	}
	child := n.children[digit]
	if child == nil {
		return nil, 0, false
	}
	return child.get(digits, res+1)
}
