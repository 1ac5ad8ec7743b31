// Package writer exposes sinks for disktree image emission.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes a disktree image to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteImage writes buf to the configured path atomically via temp file + rename,
// so that readers never observe a partially written image.
func (w *FileWriter) WriteImage(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".hextree-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil // don't clean up in defer

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
