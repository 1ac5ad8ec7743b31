package hextree

import (
	"errors"
	"fmt"
)

// ErrNotDisktree indicates a byte stream's magic did not match the disktree header.
var ErrNotDisktree = errors.New("hextree: not a disktree image")

// ErrEmptyIndex indicates a decode helper was asked to read past the end of its buffer.
var ErrEmptyIndex = errors.New("hextree: truncated buffer")

// InvalidIndexError reports an H3 index that failed the cell invariants:
// reserved bit set, mode other than 1, or a base cell number outside [0,122).
type InvalidIndexError struct {
	Raw uint64
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("hextree: invalid h3 index: 0x%x", e.Raw)
}

// VersionError reports a disktree version byte this build cannot read.
type VersionError struct {
	Got byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("hextree: unsupported disktree version: %d", e.Got)
}

// InvalidTagError reports a malformed node tag encountered while walking a disktree image.
type InvalidTagError struct {
	Tag byte
	Pos int64
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("hextree: invalid node tag 0x%02x at offset %d", e.Tag, e.Pos)
}

// VarintError reports a value-length that does not fit the 27-bit varint framing
// when a leaf is written. It is not returned on the read side: a malformed
// length prefix makes a disktree lookup report ok=false instead.
type VarintError struct {
	Value uint32
}

func (e *VarintError) Error() string {
	return fmt.Sprintf("hextree: value length %d exceeds varint range", e.Value)
}

// WriterError wraps a failure returned by a caller-supplied value encoder.
type WriterError struct {
	Err error
}

func (e *WriterError) Error() string {
	return fmt.Sprintf("hextree: value encoder failed: %v", e.Err)
}

func (e *WriterError) Unwrap() error {
	return e.Err
}

// wrapIO tags an I/O failure from the backing reader/writer with the failing
// operation.
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("hextree: %s: %w", op, err)
}
