// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a KV store kept as a single JSON object on disk. Every Set
// rewrites the file through a temporary file and a rename, so a crash
// leaves either the old or the new document.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	closed bool
}

// OpenFile opens or creates the store at path. Missing parent directories
// are created.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("storage: file backend needs a path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	f := &File{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slogger().Debug("storage file created", "path", path)
	case err != nil:
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	case len(data) > 0:
		if err := json.Unmarshal(data, &f.values); err != nil {
			return nil, fmt.Errorf("storage: parse %s: %w", path, err)
		}
	}
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string {
	return f.path
}

// Get implements KV.
func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	v, ok := f.values[key]
	return v, ok, nil
}

// Set implements KV.
func (f *File) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// Delete implements KV.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev, had := f.values[key]
	if !had {
		return nil
	}
	delete(f.values, key)
	if err := f.flush(); err != nil {
		f.values[key] = prev
		return err
	}
	return nil
}

// Close implements KV.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// flush writes the document. Caller must hold f.mu.
func (f *File) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: write %s: %w", f.path, err)
	}
	slogger().Debug("storage file written", "path", f.path, "bytes", len(data))
	return nil
}
