// Package runlock keeps two exports from writing into the same output tree at
// the same time.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrBusy reports that another process holds the lock.
var ErrBusy = errors.New("export already running")

// Lock is an advisory file lock guarding one output directory.
type Lock struct {
	path      string
	outputDir string
	lock      *flock.Flock
}

// PathFor returns the lock file used for outputDir inside stateDir.
func PathFor(stateDir, outputDir string) (string, error) {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(stateDir, "export-"+hex.EncodeToString(sum[:6])+".lock"), nil
}

// Acquire takes the lock for outputDir without blocking.
func Acquire(stateDir, outputDir string) (*Lock, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	path, err := PathFor(stateDir, outputDir)
	if err != nil {
		return nil, err
	}
	l := &Lock{path: path, outputDir: outputDir, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: another export into %s is already running", ErrBusy, outputDir)
	}
	return l, nil
}

// Path is the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. The lock file stays behind for reuse.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
