package hextree

// Entry is a view into a single map slot, either occupied or vacant. It is
// constructed by HexTreeMap.Entry.
type Entry[V any, C Compactor[V]] struct {
	occupied *OccupiedEntry[V]
	vacant   *VacantEntry[V, C]
}

// OccupiedEntry is a view into an entry whose cell is already covered by a
// value, possibly at an ancestor cell.
type OccupiedEntry[V any] struct {
	targetCell Cell
	actualCell Cell
	value      *V
}

// VacantEntry is a view into an entry whose cell has no covering value yet.
type VacantEntry[V any, C Compactor[V]] struct {
	targetCell Cell
	m          *HexTreeMap[V, C]
}

// AndModify provides in-place mutable access to an occupied entry before
// any potential insert into the map. It is a no-op on a vacant entry.
func (e Entry[V, C]) AndModify(f func(cell Cell, value *V)) Entry[V, C] {
	if e.occupied != nil {
		f(e.occupied.actualCell, e.occupied.value)
	}
	return e
}

// OrInsert ensures a value is present, inserting def if the entry was
// vacant, and returns the covering cell and a pointer to the value.
func (e Entry[V, C]) OrInsert(def V) (Cell, *V) {
	if e.occupied != nil {
		return e.occupied.actualCell, e.occupied.value
	}
	v := e.vacant
	v.m.Insert(v.targetCell, def)
	cell, value, _ := v.m.Get(v.targetCell)
	return cell, value
}

// OrInsertWith is like OrInsert but computes the default lazily.
func (e Entry[V, C]) OrInsertWith(def func() V) (Cell, *V) {
	if e.occupied != nil {
		return e.occupied.actualCell, e.occupied.value
	}
	v := e.vacant
	v.m.Insert(v.targetCell, def())
	cell, value, _ := v.m.Get(v.targetCell)
	return cell, value
}

// OrDefault ensures a value is present, inserting V's zero value if the
// entry was vacant.
func (e Entry[V, C]) OrDefault() (Cell, *V) {
	var zero V
	return e.OrInsert(zero)
}

// Entry returns a view into cell's slot in the map for in-place update.
func (m *HexTreeMap[V, C]) Entry(cell Cell) Entry[V, C] {
	actual, v, ok := m.Get(cell)
	if !ok {
		return Entry[V, C]{vacant: &VacantEntry[V, C]{targetCell: cell, m: m}}
	}
	return Entry[V, C]{occupied: &OccupiedEntry[V]{targetCell: cell, actualCell: actual, value: v}}
}
