package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is a Store backed by a small YAML document on disk. Every Set
// rewrites the whole document through a temporary file and a rename.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]float64
}

// OpenFile loads the store at path. A missing file is an empty store.
// A file that cannot be parsed is also treated as empty so a corrupt save
// never blocks the game; the parse error is returned alongside the store.
func OpenFile(path string) (*File, error) {
	f := &File{
		path:   path,
		values: make(map[string]float64),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read store %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &f.values); err != nil {
		f.values = make(map[string]float64)
		return f, fmt.Errorf("parse store %s: %w", path, err)
	}
	if f.values == nil {
		f.values = make(map[string]float64)
	}
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string {
	return f.path
}

// Get returns the value under key, or 0.
func (f *File) Get(key string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

// Set stores v under key and writes the document back to disk.
func (f *File) Set(key string, v float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = v

	data, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store %s: %w", f.path, err)
	}
	return nil
}
