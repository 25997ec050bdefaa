package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// JSON-backed key-value slots. One file per key, human-readable, portable.
// A single process owns the directory; the mutex only guards in-process callers.

// ErrNotFound is returned by Get when nothing has been stored under a key.
var ErrNotFound = errors.New("slot not found")

const fileExt = ".json"

// Dir stores each key as <dir>/<key>.json.
type Dir struct {
	dir string
	mu  sync.RWMutex
}

// NewDir returns a slot store rooted at dir. The directory is created on first write.
func NewDir(dir string) *Dir {
	return &Dir{dir: dir}
}

// Path returns the file backing key.
func (d *Dir) Path(key string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	return filepath.Join(d.dir, key+fileExt), nil
}

func (d *Dir) Get(key string) ([]byte, error) {
	p, err := d.Path(key)
	if err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(b) == 0 {
		return nil, ErrNotFound
	}
	return b, nil
}

// Set replaces the value under key. The write goes through a temp file and a
// rename so a crash never leaves a half-written slot behind.
func (d *Dir) Set(key string, data []byte) error {
	p, err := d.Path(key)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
