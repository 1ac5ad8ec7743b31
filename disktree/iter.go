package disktree

import (
	"sync"

	"github.com/hextreelabs/hextree"
	"github.com/hextreelabs/hextree/disktree/format"
)

// childSlot is one sibling entry pending a visit during iteration: the
// digit it occupies and the file offset of its node record.
type childSlot struct {
	digit uint8
	pos   int64
}

// slotPool recycles the per-frame slot slices that a deep or wide tree
// would otherwise allocate one of per node visited.
var slotPool = sync.Pool{
	New: func() any {
		s := make([]childSlot, 0, 7)
		return &s
	},
}

func getSlots() []childSlot {
	return (*slotPool.Get().(*[]childSlot))[:0]
}

func putSlots(s []childSlot) {
	s = s[:0]
	slotPool.Put(&s)
}

type diskFrame struct {
	slots []childSlot
	next  int
}

// diskIter walks a DiskTree depth-first without recursion, the on-disk
// counterpart to the in-memory package's treeIter.
type diskIter struct {
	data        []byte
	frames      []*diskFrame
	cs          *hextree.CellStack
	pendingCell hextree.Cell
	pendingVal  []byte
	havePending bool
	done        bool
	err         error
}

func newRootIter(t *DiskTree) *diskIter {
	root := getSlots()
	for b := 0; b < format.BaseCellCount; b++ {
		ptr := t.baseOffset(uint8(b))
		if !ptr.IsNull() {
			root = append(root, childSlot{digit: uint8(b), pos: int64(ptr)})
		}
	}
	return &diskIter{data: t.data, frames: []*diskFrame{{slots: root}}, cs: hextree.NewCellStack()}
}

func newDiskSingletonIter(cell hextree.Cell, value []byte) *diskIter {
	return &diskIter{pendingCell: cell, pendingVal: value, havePending: true}
}

func newDiskEmptyIter() *diskIter {
	return &diskIter{done: true}
}

func newDiskErrorIter(err error) *diskIter {
	return &diskIter{done: true, err: err}
}

// Err returns the first decode error encountered during iteration, if any.
func (it *diskIter) Err() error {
	return it.err
}

func (it *diskIter) next() (hextree.Cell, []byte, bool) {
	if it.havePending {
		it.havePending = false
		it.done = true
		return it.pendingCell, it.pendingVal, true
	}
	if it.done {
		return hextree.Cell{}, nil, false
	}
	for len(it.frames) > 0 {
		top := it.frames[len(it.frames)-1]
		if top.next >= len(top.slots) {
			putSlots(top.slots)
			it.frames = it.frames[:len(it.frames)-1]
			if len(it.frames) > 0 {
				it.cs.Pop()
			}
			continue
		}
		slot := top.slots[top.next]
		top.next++

		it.cs.Push(slot.digit)
		dn, err := readNode(it.data, slot.pos)
		if err != nil {
			it.err = err
			it.done = true
			return hextree.Cell{}, nil, false
		}
		if dn.isLeaf {
			cell, _ := it.cs.Cell()
			value, ok := readLeafValue(it.data, dn.leafPos)
			it.cs.Pop()
			if !ok {
				it.err = hextree.ErrEmptyIndex
				it.done = true
				return hextree.Cell{}, nil, false
			}
			return cell, value, true
		}
		it.frames = append(it.frames, &diskFrame{slots: childSlotsOf(dn)})
	}
	it.done = true
	return hextree.Cell{}, nil, false
}

func childSlotsOf(dn diskNode) []childSlot {
	slots := getSlots()
	for d := uint8(0); d < 7; d++ {
		if dn.present[d] {
			slots = append(slots, childSlot{digit: d, pos: int64(dn.children[d])})
		}
	}
	return slots
}

// seq adapts the pull-based iterator to a Go 1.23 range-over-func sequence.
func (it *diskIter) seq() func(yield func(hextree.Cell, []byte) bool) {
	return func(yield func(hextree.Cell, []byte) bool) {
		for {
			cell, v, ok := it.next()
			if !ok {
				return
			}
			if !yield(cell, v) {
				return
			}
		}
	}
}

// Iter returns a sequence over every (cell, value) pair stored in the tree,
// in deterministic order (ascending base cell, then ascending child digit).
// Each value slice aliases the tree's backing buffer.
func (t *DiskTree) Iter() func(yield func(hextree.Cell, []byte) bool) {
	return newRootIter(t).seq()
}

// Descendants returns a sequence over every leaf equal to or a descendant
// of prefix. If an ancestor of prefix is itself a leaf, that leaf covers
// the entire prefix subtree and is yielded exactly once.
func (t *DiskTree) Descendants(prefix hextree.Cell) func(yield func(hextree.Cell, []byte) bool) {
	ptr := t.baseOffset(prefix.Base())
	if ptr.IsNull() {
		return newDiskEmptyIter().seq()
	}
	cs := hextree.NewCellStack()
	cs.Push(prefix.Base())
	digits := hextree.NewDigits(prefix)
	pos := int64(ptr)
	var dn diskNode
	for {
		var err error
		dn, err = readNode(t.data, pos)
		if err != nil {
			return newDiskErrorIter(err).seq()
		}
		if dn.isLeaf {
			cell, _ := cs.Cell()
			value, ok := readLeafValue(t.data, dn.leafPos)
			if !ok {
				return newDiskErrorIter(hextree.ErrEmptyIndex).seq()
			}
			return newDiskSingletonIter(cell, value).seq()
		}
		digit, ok := digits.Next()
		if !ok {
			break
		}
		if !dn.present[digit] {
			return newDiskEmptyIter().seq()
		}
		cs.Push(digit)
		pos = int64(dn.children[digit])
	}
	return (&diskIter{data: t.data, frames: []*diskFrame{{slots: childSlotsOf(dn)}}, cs: cs}).seq()
}
