// Package dptr implements the 5-byte little-endian disk pointer used
// throughout a disktree image: the base-cell table and every parent node's
// child list are arrays of these.
package dptr

import "github.com/hextreelabs/hextree/internal/buf"

// Size is the on-disk width of a Dptr, in bytes.
const Size = 5

// Max is the largest offset a Dptr can address (just under 1 TiB).
const Max = 1<<(Size*8) - 1

// Dptr is an absolute byte offset into a disktree image. The zero value is
// Null and never denotes a real node.
type Dptr uint64

// Null returns the sentinel pointer meaning "no such child".
func Null() Dptr {
	return 0
}

// IsNull reports whether d is the null pointer.
func (d Dptr) IsNull() bool {
	return d == 0
}

// New validates that v fits in Size bytes before wrapping it.
func New(v uint64) (Dptr, bool) {
	if v > Max {
		return 0, false
	}
	return Dptr(v), true
}

// Decode reads a Dptr from the first Size bytes of b. The caller is
// responsible for bounds-checking b beforehand.
func Decode(b []byte) Dptr {
	return Dptr(buf.UintLE(b, Size))
}

// Encode writes d into the first Size bytes of b. The caller is responsible
// for ensuring b is at least Size bytes long.
func (d Dptr) Encode(b []byte) {
	buf.PutUintLE(b, uint64(d), Size)
}
