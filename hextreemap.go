package hextree

// HexTreeMap maps H3 cells to values of type V. Its root is a fixed
// 122-slot array indexed by base cell, below which a 7-ary trie stores
// values at whatever resolution they were inserted, subject to coalescing
// by C.
type HexTreeMap[V any, C Compactor[V]] struct {
	roots     [122]*node[V]
	compactor C
	length    int
}

// New constructs an empty HexTreeMap that never compacts.
func New[V any]() *HexTreeMap[V, NullCompactor[V]] {
	return &HexTreeMap[V, NullCompactor[V]]{compactor: NullCompactor[V]{}}
}

// FromIter builds a HexTreeMap from a sequence of (cell, value) pairs,
// using the default non-compacting NullCompactor. It is equivalent to
// New followed by Extend.
func FromIter[V any](seq func(yield func(Cell, V) bool)) *HexTreeMap[V, NullCompactor[V]] {
	m := New[V]()
	m.Extend(seq)
	return m
}

// WithCompactor constructs an empty HexTreeMap using the given compaction
// strategy for subsequent inserts.
func WithCompactor[V any, C Compactor[V]](compactor C) *HexTreeMap[V, C] {
	return &HexTreeMap[V, C]{compactor: compactor}
}

// ReplaceCompactor returns a map with m's contents but a new compactor for
// subsequent inserts. It is a free function, not a method, because Go
// methods cannot change their receiver's type parameters.
func ReplaceCompactor[V any, C Compactor[V], NewC Compactor[V]](m *HexTreeMap[V, C], newCompactor NewC) *HexTreeMap[V, NewC] {
	return &HexTreeMap[V, NewC]{roots: m.roots, compactor: newCompactor, length: m.length}
}

// Insert adds a (cell, value) pair to the map. If cell already lies beneath
// an existing leaf, the insert is silently dropped. If a more specific
// cell was already the target of the insert path, that subtree (and
// anything it contained) is replaced outright.
func (m *HexTreeMap[V, C]) Insert(cell Cell, value V) {
	digits := NewDigits(cell)
	delta := insert(&m.roots[cell.Base()], cell, 0, &digits, value, m.compactor)
	m.length += delta
}

// Get returns the value covering cell, along with the actual (possibly
// coarser ancestor) cell it was stored at.
func (m *HexTreeMap[V, C]) Get(cell Cell) (Cell, *V, bool) {
	root := m.roots[cell.Base()]
	if root == nil {
		return Cell{}, nil, false
	}
	digits := NewDigits(cell)
	v, res, ok := root.get(&digits, 0)
	if !ok {
		return Cell{}, nil, false
	}
	actual, _ := cell.ToParent(res)
	return actual, v, true
}

// GetMut returns the same result as Get. It exists for API parity with
// callers migrating mutable-vs-shared access patterns; the returned
// pointer is always mutable, since Go draws no distinction between the two.
func (m *HexTreeMap[V, C]) GetMut(cell Cell) (Cell, *V, bool) {
	return m.Get(cell)
}

// Contains reports whether cell is fully covered by some inserted value.
func (m *HexTreeMap[V, C]) Contains(cell Cell) bool {
	root := m.roots[cell.Base()]
	if root == nil {
		return false
	}
	digits := NewDigits(cell)
	return root.contains(&digits)
}

// Len returns the number of leaves (cells with no internal leaf ancestor)
// in the map. This is a running counter maintained incrementally by
// Insert, not a per-call tree walk.
func (m *HexTreeMap[V, C]) Len() int {
	return m.length
}

// IsEmpty reports whether the map has no entries.
func (m *HexTreeMap[V, C]) IsEmpty() bool {
	return m.length == 0
}

// MustGet returns the value covering cell, panicking if absent. It stands
// in for Rust's indexing operator, which Go has no equivalent syntax for
// on a user-defined generic type.
func (m *HexTreeMap[V, C]) MustGet(cell Cell) V {
	_, v, ok := m.Get(cell)
	if !ok {
		panic("hextree: no entry found for cell")
	}
	return *v
}

// Iter returns a sequence over every (cell, value) pair in the map, in
// deterministic order (ascending base cell, then ascending child digit).
func (m *HexTreeMap[V, C]) Iter() func(yield func(Cell, *V) bool) {
	return newTreeIter(m.roots[:]).seq()
}

// Descendants returns a sequence over every leaf equal to or a descendant
// of prefix. If an ancestor of prefix is itself a leaf, that leaf covers
// the entire prefix subtree and is yielded exactly once.
func (m *HexTreeMap[V, C]) Descendants(prefix Cell) func(yield func(Cell, *V) bool) {
	root := m.roots[prefix.Base()]
	if root == nil {
		return newEmptyIter[V]().seq()
	}
	cs := NewCellStack()
	cs.Push(prefix.Base())
	digits := NewDigits(prefix)
	n := root
	for {
		if n.isLeaf {
			cell, _ := cs.Cell()
			return newSingletonIter(cell, &n.value).seq()
		}
		digit, ok := digits.Next()
		if !ok {
			break
		}
		child := n.children[digit]
		if child == nil {
			return newEmptyIter[V]().seq()
		}
		cs.Push(digit)
		n = child
	}
	return (&treeIter[V]{frames: []*iterFrame[V]{{nodes: n.children[:]}}, cs: cs}).seq()
}

// Extend inserts every (cell, value) pair from seq.
func (m *HexTreeMap[V, C]) Extend(seq func(yield func(Cell, V) bool)) {
	seq(func(cell Cell, v V) bool {
		m.Insert(cell, v)
		return true
	})
}
