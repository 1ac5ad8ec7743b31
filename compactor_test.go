package hextree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrs(vals ...int) [7]*int {
	var out [7]*int
	for i, v := range vals {
		if v == -1 {
			continue
		}
		vv := v
		out[i] = &vv
	}
	return out
}

func TestNullCompactorNeverFires(t *testing.T) {
	var c NullCompactor[int]
	full := [7]*int{}
	for i := range full {
		v := i
		full[i] = &v
	}
	_, ok := c.Compact(Cell{}, full)
	assert.False(t, ok)
}

func TestEqCompactorRequiresAllEqual(t *testing.T) {
	var c EqCompactor[int]

	_, ok := c.Compact(Cell{}, ptrs(1, 1, 1, 1, 1, 1, 1))
	assert.True(t, ok)

	v, ok := c.Compact(Cell{}, ptrs(5, 5, 5, 5, 5, 5, 5))
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = c.Compact(Cell{}, ptrs(1, 1, 1, 2, 1, 1, 1))
	assert.False(t, ok)

	missing := ptrs(1, 1, 1, 1, 1, 1, 1)
	missing[3] = nil
	_, ok = c.Compact(Cell{}, missing)
	assert.False(t, ok, "a missing child blocks the eq compactor")
}

func TestSetCompactorRequiresAllPresent(t *testing.T) {
	var c SetCompactor
	full := [7]*struct{}{}
	for i := range full {
		full[i] = &struct{}{}
	}
	_, ok := c.Compact(Cell{}, full)
	assert.True(t, ok)

	partial := full
	partial[2] = nil
	_, ok = c.Compact(Cell{}, partial)
	assert.False(t, ok)
}

func TestCompactorFuncAdapts(t *testing.T) {
	called := false
	f := CompactorFunc[int](func(cell Cell, children [7]*int) (int, bool) {
		called = true
		return 42, true
	})
	v, ok := f.Compact(Cell{}, [7]*int{})
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, called)
}
