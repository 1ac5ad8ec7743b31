package disktree

import (
	"math/bits"

	"github.com/hextreelabs/hextree"
	"github.com/hextreelabs/hextree/disktree/dptr"
)

// diskNode is the decoded form of one node record. A leaf record has no tag
// byte of its own: its first byte is the varint length prefix, whose top bit
// is always 0, which is exactly the bit a parent record's tag byte always
// sets to 1. leafPos is only meaningful when isLeaf is true, and equals the
// record's start offset.
type diskNode struct {
	isLeaf   bool
	leafPos  int64
	present  [7]bool
	children [7]dptr.Dptr
}

// readNode decodes the node record starting at pos in buf.
func readNode(buf []byte, pos int64) (diskNode, error) {
	if pos < 0 || pos >= int64(len(buf)) {
		return diskNode{}, &hextree.InvalidTagError{Pos: pos}
	}
	tag := buf[pos]
	if tag&0x80 == 0 {
		return diskNode{isLeaf: true, leafPos: pos}, nil
	}
	presentBits := tag & 0x7F
	if presentBits == 0 {
		return diskNode{}, &hextree.InvalidTagError{Tag: tag, Pos: pos}
	}
	n := bits.OnesCount8(presentBits)
	need := int64(1 + n*dptr.Size)
	if pos+need > int64(len(buf)) {
		return diskNode{}, &hextree.InvalidTagError{Tag: tag, Pos: pos}
	}
	var dn diskNode
	off := pos + 1
	for d := uint8(0); d < 7; d++ {
		if presentBits&(1<<d) == 0 {
			continue
		}
		dn.present[d] = true
		dn.children[d] = dptr.Decode(buf[off : off+dptr.Size])
		off += dptr.Size
	}
	return dn, nil
}

// parentTag builds the tag byte for a parent record with the given present
// children.
func parentTag(present [7]bool) byte {
	tag := byte(0x80)
	for d := uint8(0); d < 7; d++ {
		if present[d] {
			tag |= 1 << d
		}
	}
	return tag
}
