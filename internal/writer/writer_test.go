package writer

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriterWriteImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	fw := &FileWriter{Path: path}
	require.NoError(t, fw.WriteImage([]byte("hello")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestFileWriterOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	fw := &FileWriter{Path: path}
	require.NoError(t, fw.WriteImage([]byte("first")))
	require.NoError(t, fw.WriteImage([]byte("second, and longer")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second, and longer", string(got))
}

func TestMemSeekWriterWriteImage(t *testing.T) {
	mw := &MemSeekWriter{}
	require.NoError(t, mw.WriteImage([]byte("a")))
	require.NoError(t, mw.WriteImage([]byte("bb")))
	assert.Equal(t, "bb", string(mw.Buf), "a second write replaces the first, not appends")
}

func TestMemSeekWriterWriteThenSeekPatch(t *testing.T) {
	mw := &MemSeekWriter{}
	_, err := mw.Write([]byte("0000"))
	require.NoError(t, err)
	_, err = mw.Write([]byte("tail"))
	require.NoError(t, err)

	_, err = mw.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, err = mw.Write([]byte("abcd"))
	require.NoError(t, err)

	assert.Equal(t, "abcdtail", string(mw.Buf))
}
