package hextree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexTreeSetInsertAndContains(t *testing.T) {
	s := NewSet()
	cell := buildCell(t, 20, 0, 6, 4)

	assert.False(t, s.Contains(cell))
	InsertSet(s, cell)
	assert.True(t, s.Contains(cell))
	assert.Equal(t, 1, s.Len())
}

func TestHexTreeSetCoalescesSevenSiblings(t *testing.T) {
	s := NewSet()
	parent := buildCell(t, 20, 0, 6)
	for d := uint8(0); d < 7; d++ {
		InsertSet(s, buildCell(t, 20, 0, 6, d))
	}
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(parent))
}

func TestCellsIteratesEverySetMember(t *testing.T) {
	s := NewSet()
	c1 := buildCell(t, 3, 1)
	c2 := buildCell(t, 3, 2)
	InsertSet(s, c1)
	InsertSet(s, c2)

	var got []Cell
	Cells(s)(func(cell Cell) bool {
		got = append(got, cell)
		return true
	})
	require.Len(t, got, 2)
	assert.Equal(t, c1, got[0])
	assert.Equal(t, c2, got[1])
}

func TestFromIterSet(t *testing.T) {
	cells := []Cell{buildCell(t, 3, 1), buildCell(t, 3, 2)}
	s := FromIterSet(func(yield func(Cell) bool) {
		for _, c := range cells {
			if !yield(c) {
				return
			}
		}
	})
	assert.Equal(t, 2, s.Len())
	for _, c := range cells {
		assert.True(t, s.Contains(c))
	}
}
