// Package disktree reads the on-disk image produced by Write/WriteFile: a
// header, a fixed 122-entry base-cell pointer table, and a variable-length
// node area of leaf and parent records. See format.Magic and the package's
// *_test.go fixtures for the exact byte layout.
package disktree

import (
	"fmt"

	"github.com/hextreelabs/hextree"
	"github.com/hextreelabs/hextree/disktree/dptr"
	"github.com/hextreelabs/hextree/disktree/format"
	"github.com/hextreelabs/hextree/disktree/varint"
	"github.com/hextreelabs/hextree/internal/buf"
	"github.com/hextreelabs/hextree/internal/mmfile"
)

// DiskTree is a read-only view over a disktree image, either mmap'd from a
// file or held as an in-memory byte slice.
type DiskTree struct {
	data    []byte
	cleanup func() error
}

// Open memory-maps the disktree image at path. Close must be called once
// the returned DiskTree is no longer needed, to release the mapping.
func Open(path string) (*DiskTree, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("hextree: open %s: %w", path, err)
	}
	dt, err := FromBytes(data)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	dt.cleanup = cleanup
	return dt, nil
}

// FromBytes wraps an already-loaded disktree image. The caller retains
// ownership of data; Close is a no-op for a DiskTree built this way.
func FromBytes(data []byte) (*DiskTree, error) {
	if len(data) == 0 {
		return nil, hextree.ErrEmptyIndex
	}
	if len(data) < format.HeaderSize || string(data[:format.MagicSize]) != format.Magic {
		return nil, hextree.ErrNotDisktree
	}
	version := format.DecodeVersion(data[format.MagicSize])
	if version != format.SupportedVersion {
		return nil, &hextree.VersionError{Got: version}
	}
	if !buf.Has(data, format.BaseTableStart, format.BaseTableSize) {
		return nil, hextree.ErrNotDisktree
	}
	return &DiskTree{data: data}, nil
}

// Close releases any mapping backing the tree. It is safe to call more than
// once, and is a no-op for a DiskTree built with FromBytes.
func (t *DiskTree) Close() error {
	if t.cleanup == nil {
		return nil
	}
	cleanup := t.cleanup
	t.cleanup = nil
	return cleanup()
}

func (t *DiskTree) baseOffset(base uint8) dptr.Dptr {
	off := format.BaseTableStart + int(base)*dptr.Size
	return dptr.Decode(t.data[off : off+dptr.Size])
}

// Get returns the value covering cell, along with the actual (possibly
// coarser ancestor) cell it was stored at. The returned slice aliases the
// tree's backing buffer and is only valid while the DiskTree is open.
func (t *DiskTree) Get(cell hextree.Cell) (hextree.Cell, []byte, bool) {
	ptr := t.baseOffset(cell.Base())
	if ptr.IsNull() {
		return hextree.Cell{}, nil, false
	}
	digits := hextree.NewDigits(cell)
	res := uint8(0)
	pos := int64(ptr)
	for {
		dn, err := readNode(t.data, pos)
		if err != nil {
			return hextree.Cell{}, nil, false
		}
		if dn.isLeaf {
			value, ok := readLeafValue(t.data, dn.leafPos)
			if !ok {
				return hextree.Cell{}, nil, false
			}
			actual, _ := cell.ToParent(res)
			return actual, value, true
		}
		digit, ok := digits.Next()
		if !ok {
			return hextree.Cell{}, nil, false
		}
		if !dn.present[digit] {
			return hextree.Cell{}, nil, false
		}
		pos = int64(dn.children[digit])
		res++
	}
}

// Contains reports whether cell is fully covered by some stored value.
func (t *DiskTree) Contains(cell hextree.Cell) bool {
	_, _, ok := t.Get(cell)
	return ok
}

func readLeafValue(data []byte, pos int64) ([]byte, bool) {
	if pos < 0 || pos >= int64(len(data)) {
		return nil, false
	}
	length, n, err := varint.Decode(data[pos:])
	if err != nil {
		return nil, false
	}
	start := pos + int64(n)
	value, ok := buf.Slice(data, int(start), int(length))
	if !ok {
		return nil, false
	}
	return value, true
}
