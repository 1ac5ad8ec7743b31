//go:build windows

package mmfile

import (
	"os"
)

// Map reads the disktree image at path into memory. Windows mapping support
// is not implemented; this falls back to a full read, which is still
// correct (disktree images are read-only and fit the contract of Open) but
// forgoes the zero-copy win of a real mapping.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
