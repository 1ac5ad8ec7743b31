package disktree_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hextreelabs/hextree"
	"github.com/hextreelabs/hextree/disktree"
)

func buildCell(t *testing.T, base uint8, digits ...uint8) hextree.Cell {
	t.Helper()
	s := hextree.NewCellStack()
	s.Push(base)
	for _, d := range digits {
		s.Push(d)
	}
	c, ok := s.Cell()
	require.True(t, ok)
	return c
}

func TestWriteFileThenOpen(t *testing.T) {
	m := hextree.New[string]()
	c1 := buildCell(t, 20, 0, 6, 4)
	c2 := buildCell(t, 42, 3)
	m.Insert(c1, "alpha")
	m.Insert(c2, "beta")

	path := filepath.Join(t.TempDir(), "cells.hextree")
	enc := func(w io.Writer, v *string) error {
		_, err := io.WriteString(w, *v)
		return err
	}
	require.NoError(t, disktree.WriteFile(path, m, enc))

	dt, err := disktree.Open(path)
	require.NoError(t, err)
	defer dt.Close()

	actual, value, ok := dt.Get(c1)
	require.True(t, ok)
	assert.Equal(t, c1, actual)
	assert.Equal(t, "alpha", string(value))

	actual, value, ok = dt.Get(c2)
	require.True(t, ok)
	assert.Equal(t, c2, actual)
	assert.Equal(t, "beta", string(value))
}

func TestOpenRejectsMissingFile(t *testing.T) {
	_, err := disktree.Open(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
