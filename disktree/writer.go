package disktree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hextreelabs/hextree"
	"github.com/hextreelabs/hextree/disktree/dptr"
	"github.com/hextreelabs/hextree/disktree/format"
	"github.com/hextreelabs/hextree/disktree/varint"
	"github.com/hextreelabs/hextree/internal/writer"
)

// Encoder writes v's on-disk representation to w. The caller supplies one
// for whatever value type a HexTreeMap holds; this package never interprets
// a leaf's bytes itself.
type Encoder[V any] func(w io.Writer, v *V) error

// writeNode is a transient tree built only to drive serialization. It is
// reconstructed from a HexTreeMap's public iteration order rather than from
// its private node type, so this package never needs to see across that
// boundary.
type writeNode[V any] struct {
	isLeaf   bool
	value    *V
	present  [7]bool
	children [7]*writeNode[V]
}

type leafEntry[V any] struct {
	cell  hextree.Cell
	value *V
}

// buildTrees partitions seq's leaves by base cell and, within each base
// cell, recursively by digit, recovering exactly the parent/leaf shape of
// the source map without touching its internal node representation.
func buildTrees[V any](seq func(yield func(hextree.Cell, *V) bool)) [format.BaseCellCount]*writeNode[V] {
	var perBase [format.BaseCellCount][]leafEntry[V]
	seq(func(cell hextree.Cell, v *V) bool {
		b := cell.Base()
		perBase[b] = append(perBase[b], leafEntry[V]{cell: cell, value: v})
		return true
	})
	var trees [format.BaseCellCount]*writeNode[V]
	for b, entries := range perBase {
		if len(entries) == 0 {
			continue
		}
		trees[b] = buildNode(entries, 0)
	}
	return trees
}

func buildNode[V any](entries []leafEntry[V], res uint8) *writeNode[V] {
	if len(entries) == 1 && entries[0].cell.Res() == res {
		return &writeNode[V]{isLeaf: true, value: entries[0].value}
	}
	n := &writeNode[V]{}
	var buckets [7][]leafEntry[V]
	for _, e := range entries {
		d, _ := e.cell.Digit(res + 1)
		buckets[d] = append(buckets[d], e)
		n.present[d] = true
	}
	for d := range buckets {
		if n.present[d] {
			n.children[d] = buildNode(buckets[d], res+1)
		}
	}
	return n
}

// Write serializes m to wtr as a disktree image, encoding each leaf value
// with enc. wtr must support Seek, since parent records are written with
// placeholder child pointers that are patched in place once each child's
// offset is known.
func Write[V any, C hextree.Compactor[V]](wtr io.WriteSeeker, m *hextree.HexTreeMap[V, C], enc Encoder[V]) error {
	if _, err := wtr.Write([]byte(format.Magic)); err != nil {
		return wrapWriteErr("write magic", err)
	}
	if _, err := wtr.Write([]byte{format.EncodeVersion(format.SupportedVersion)}); err != nil {
		return wrapWriteErr("write version", err)
	}

	baseTablePos, err := wtr.Seek(0, io.SeekCurrent)
	if err != nil {
		return wrapWriteErr("seek", err)
	}
	if _, err := wtr.Write(make([]byte, format.BaseTableSize)); err != nil {
		return wrapWriteErr("reserve base table", err)
	}

	trees := buildTrees(m.Iter())
	var baseOffsets [format.BaseCellCount]dptr.Dptr
	for b, tree := range trees {
		if tree == nil {
			continue
		}
		off, err := writeSubtree(wtr, tree, enc)
		if err != nil {
			return err
		}
		baseOffsets[b] = off
	}

	endPos, err := wtr.Seek(0, io.SeekCurrent)
	if err != nil {
		return wrapWriteErr("seek", err)
	}
	if _, err := wtr.Seek(baseTablePos, io.SeekStart); err != nil {
		return wrapWriteErr("seek", err)
	}
	var table [format.BaseTableSize]byte
	for b, off := range baseOffsets {
		off.Encode(table[b*dptr.Size : b*dptr.Size+dptr.Size])
	}
	if _, err := wtr.Write(table[:]); err != nil {
		return wrapWriteErr("patch base table", err)
	}
	if _, err := wtr.Seek(endPos, io.SeekStart); err != nil {
		return wrapWriteErr("seek", err)
	}
	return nil
}

func writeSubtree[V any](wtr io.WriteSeeker, n *writeNode[V], enc Encoder[V]) (dptr.Dptr, error) {
	offset, err := wtr.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapWriteErr("seek", err)
	}
	ptr, ok := dptr.New(uint64(offset))
	if !ok {
		return 0, fmt.Errorf("hextree: disktree image exceeds %d bytes", dptr.Max)
	}

	if n.isLeaf {
		var buf bytes.Buffer
		if err := enc(&buf, n.value); err != nil {
			return 0, &hextree.WriterError{Err: err}
		}
		if buf.Len() > varint.MaxValue {
			return 0, &hextree.VarintError{Value: uint32(buf.Len())}
		}
		lenBytes, err := varint.Encode(uint32(buf.Len()))
		if err != nil {
			return 0, &hextree.VarintError{Value: uint32(buf.Len())}
		}
		if _, err := wtr.Write(lenBytes); err != nil {
			return 0, wrapWriteErr("write leaf length", err)
		}
		if _, err := wtr.Write(buf.Bytes()); err != nil {
			return 0, wrapWriteErr("write leaf value", err)
		}
		return ptr, nil
	}

	tag := parentTag(n.present)
	if _, err := wtr.Write([]byte{tag}); err != nil {
		return 0, wrapWriteErr("write tag", err)
	}
	placeholderPos, err := wtr.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapWriteErr("seek", err)
	}
	var digits []uint8
	for d := uint8(0); d < 7; d++ {
		if n.present[d] {
			digits = append(digits, d)
		}
	}
	if _, err := wtr.Write(make([]byte, len(digits)*dptr.Size)); err != nil {
		return 0, wrapWriteErr("reserve child pointers", err)
	}

	childOffsets := make([]dptr.Dptr, len(digits))
	for i, d := range digits {
		off, err := writeSubtree(wtr, n.children[d], enc)
		if err != nil {
			return 0, err
		}
		childOffsets[i] = off
	}

	endPos, err := wtr.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapWriteErr("seek", err)
	}
	if _, err := wtr.Seek(placeholderPos, io.SeekStart); err != nil {
		return 0, wrapWriteErr("seek", err)
	}
	patch := make([]byte, len(digits)*dptr.Size)
	for i, off := range childOffsets {
		off.Encode(patch[i*dptr.Size : i*dptr.Size+dptr.Size])
	}
	if _, err := wtr.Write(patch); err != nil {
		return 0, wrapWriteErr("patch child pointers", err)
	}
	if _, err := wtr.Seek(endPos, io.SeekStart); err != nil {
		return 0, wrapWriteErr("seek", err)
	}
	return ptr, nil
}

func wrapWriteErr(op string, err error) error {
	return fmt.Errorf("hextree: %s: %w", op, err)
}

// WriteFile serializes m to path atomically: the image is built in memory
// via a writer.MemSeekWriter, since Write's fix-up pattern needs to seek
// backward into already-written bytes, and then moved into place via temp
// file, fsync, and rename, so a reader never observes a partially written
// file.
func WriteFile[V any, C hextree.Compactor[V]](path string, m *hextree.HexTreeMap[V, C], enc Encoder[V]) error {
	msw := &writer.MemSeekWriter{}
	if err := Write(msw, m, enc); err != nil {
		return err
	}
	fw := &writer.FileWriter{Path: path}
	return fw.WriteImage(msw.Buf)
}
