package hextree

// HexTreeSet represents a set of H3 cells. It's a HexTreeMap over an
// information-free value type, using SetCompactor so that seven complete
// sibling cells automatically coalesce into their parent.
type HexTreeSet = HexTreeMap[struct{}, SetCompactor]

// NewSet constructs an empty HexTreeSet.
func NewSet() *HexTreeSet {
	return WithCompactor[struct{}](SetCompactor{})
}

// FromIterSet builds a HexTreeSet from a sequence of cells. It is
// equivalent to NewSet followed by InsertSet for each cell.
func FromIterSet(seq func(yield func(Cell) bool)) *HexTreeSet {
	s := NewSet()
	seq(func(cell Cell) bool {
		InsertSet(s, cell)
		return true
	})
	return s
}

// InsertSet adds cell to the set.
func InsertSet(s *HexTreeSet, cell Cell) {
	s.Insert(cell, struct{}{})
}

// Cells returns a sequence over every cell in the set, in deterministic
// order.
func Cells(s *HexTreeSet) func(yield func(Cell) bool) {
	inner := s.Iter()
	return func(yield func(Cell) bool) {
		inner(func(cell Cell, _ *struct{}) bool {
			return yield(cell)
		})
	}
}
