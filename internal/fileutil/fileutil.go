package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParent creates every missing directory above path. Existing
// directories are not an error.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// WriteFile creates the parent directories of path and writes data to it with
// default permissions (0o644), truncating any existing file. The write is not
// atomic: a crash can leave a partial file behind.
func WriteFile(path string, data []byte) error {
	return WriteFileMode(path, data, 0o644)
}

// WriteFileMode is WriteFile with an explicit mode for newly created files.
func WriteFileMode(path string, data []byte, mode os.FileMode) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}
