// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package storage provides the key-value text store that saved pages are
// persisted to.
//
// Values are whole documents: callers read a key, modify the decoded
// value and write it back. Three backends are provided:
//
//   - Memory: process-local, for tests and ephemeral sessions.
//   - File: one JSON object on disk, rewritten atomically on every Set.
//   - SQLite: a single table in a SQLite database (modernc.org/sqlite).
//
// Open selects a backend by name, which is how configuration wires it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store is closed")

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// KV is a synchronous key-value text store.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the store. Further calls return ErrClosed.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the backend named by backend. dsn is the file path for the
// file and sqlite backends and is ignored for memory.
func Open(ctx context.Context, backend, dsn string) (KV, error) {
	switch strings.ToLower(backend) {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return OpenFile(dsn)
	case BackendSQLite:
		return OpenSQLite(ctx, dsn)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
