package hextree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 0x85283473fffffff: res 5, base 20, digits [0,6,4,3,4,7,7,...].
const sampleRaw = 0x85283473fffffff

func TestFromRawValid(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), c.Res())
	assert.Equal(t, uint8(20), c.Base())

	wantDigits := []uint8{0, 6, 4, 3, 4}
	for i, want := range wantDigits {
		r := uint8(i + 1)
		got, ok := c.Digit(r)
		require.True(t, ok, "digit at res %d", r)
		assert.Equal(t, want, got, "digit at res %d", r)
	}

	// Beyond the cell's own resolution, digits are unset.
	_, ok := c.Digit(6)
	assert.False(t, ok)
}

func TestFromRawRejectsReservedBit(t *testing.T) {
	_, err := FromRaw(sampleRaw | 1<<63)
	require.Error(t, err)
	var invalid *InvalidIndexError
	assert.ErrorAs(t, err, &invalid)
}

func TestFromRawRejectsBadMode(t *testing.T) {
	raw := sampleRaw &^ (uint64(modeMask) << modeShift)
	_, err := FromRaw(raw)
	assert.Error(t, err)
}

func TestFromRawRejectsOutOfRangeBase(t *testing.T) {
	raw := sampleRaw &^ (uint64(baseMask) << baseShift)
	raw |= uint64(125) << baseShift
	_, err := FromRaw(raw)
	assert.Error(t, err)
}

func TestToParentIdentityAndCoarser(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)

	same, ok := c.ToParent(5)
	require.True(t, ok)
	assert.Equal(t, c, same)

	parent, ok := c.ToParent(4)
	require.True(t, ok)
	assert.Equal(t, uint8(4), parent.Res())
	assert.Equal(t, uint8(20), parent.Base())
	for r := uint8(1); r <= 4; r++ {
		want, _ := c.Digit(r)
		got, _ := parent.Digit(r)
		assert.Equal(t, want, got, "digit at res %d", r)
	}
	// Resolution 5's digit is cleared back to the unused sentinel.
	d5, ok := parent.Digit(5)
	assert.False(t, ok)
	assert.Zero(t, d5)
}

func TestToParentFinerFails(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)
	_, ok := c.ToParent(6)
	assert.False(t, ok)
}

func TestToParentToBase(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)
	base, ok := c.ToParent(0)
	require.True(t, ok)
	assert.Equal(t, uint8(0), base.Res())
	assert.Equal(t, uint8(20), base.Base())
}

func TestIsRelatedTo(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)
	parent, ok := c.ToParent(3)
	require.True(t, ok)
	assert.True(t, c.IsRelatedTo(parent))
	assert.True(t, parent.IsRelatedTo(c))

	other, ok := c.ToParent(5)
	require.True(t, ok)
	otherRaw := other.Raw() ^ (uint64(1) << digitShift(1)) // flip resolution-1 digit
	otherCell := Cell{raw: otherRaw}
	assert.False(t, c.IsRelatedTo(otherCell))
}

func TestCellString(t *testing.T) {
	c, err := FromRaw(sampleRaw)
	require.NoError(t, err)
	assert.Equal(t, "85283473fffffff", c.String())
}
