package writer

import (
	"fmt"
	"io"
)

// MemSeekWriter accumulates a disktree image in memory. It implements
// io.WriteSeeker so a writer that fixes up earlier offsets (reserve a
// placeholder, write the children, seek back and patch) can build the
// whole image before it ever touches a file.
type MemSeekWriter struct {
	Buf []byte
	pos int64
}

func (w *MemSeekWriter) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.Buf)) {
		grown := make([]byte, end)
		copy(grown, w.Buf)
		w.Buf = grown
	}
	copy(w.Buf[w.pos:end], p)
	w.pos = end
	return len(p), nil
}

func (w *MemSeekWriter) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = w.pos + offset
	case io.SeekEnd:
		newPos = int64(len(w.Buf)) + offset
	default:
		return 0, fmt.Errorf("writer: invalid seek whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("writer: negative seek position")
	}
	w.pos = newPos
	return newPos, nil
}

// WriteImage resets the buffer to a copy of buf, for symmetry with
// FileWriter when a caller wants to hand MemSeekWriter a finished image
// rather than build one up through Write/Seek.
func (w *MemSeekWriter) WriteImage(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.pos = int64(len(w.Buf))
	return nil
}
