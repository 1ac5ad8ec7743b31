// Package varint implements the 1-to-4-byte length prefix used to frame
// leaf values in a disktree image. The encoding reserves the top bit of the
// first byte as 0, the same bit a parent node's tag byte always sets to 1,
// so a single byte read at a node's start position disambiguates a leaf
// record from a parent record with no separate tag.
package varint

import "errors"

// MaxValue is the largest length a varint can frame.
const MaxValue = 0x7FFFFFF

// ErrOutOfRange is returned by Encode when value exceeds MaxValue, and by
// Decode when the lead byte's top bit is set (a parent tag, not a length).
var ErrOutOfRange = errors.New("varint: value out of range")

// ErrShort is returned by Decode when b is too short to hold the length
// byte count implied by its first byte.
var ErrShort = errors.New("varint: buffer too short")

// Encode returns the shortest varint encoding of value.
func Encode(value uint32) ([]byte, error) {
	switch {
	case value < 0x40:
		return []byte{byte(value) | 0x40}, nil
	case value < 0x2000:
		v := value | 0x2000
		return []byte{byte(v >> 8), byte(v)}, nil
	case value < 0x100000:
		v := value | 0x100000
		return []byte{byte(v >> 16), byte(v >> 8), byte(v)}, nil
	case value < 0x8000000:
		v := value | 0x8000000
		return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
	default:
		return nil, ErrOutOfRange
	}
}

// Decode reads a varint from the start of b, returning the decoded value and
// the number of bytes it occupied.
func Decode(b []byte) (value uint32, n int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrShort
	}
	lead := b[0]
	switch {
	case lead&0x80 != 0:
		return 0, 0, ErrOutOfRange
	case lead&0x40 != 0:
		return uint32(lead & 0x3F), 1, nil
	case lead&0x20 != 0:
		if len(b) < 2 {
			return 0, 0, ErrShort
		}
		return uint32(lead&0x1F)<<8 | uint32(b[1]), 2, nil
	case lead&0x10 != 0:
		if len(b) < 3 {
			return 0, 0, ErrShort
		}
		return uint32(lead&0x0F)<<16 | uint32(b[1])<<8 | uint32(b[2]), 3, nil
	case lead&0x08 != 0:
		if len(b) < 4 {
			return 0, 0, ErrShort
		}
		return uint32(lead&0x07)<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), 4, nil
	default:
		return 0, 0, ErrOutOfRange
	}
}
