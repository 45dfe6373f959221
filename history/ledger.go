// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package history implements the undo/redo ledger of a page.
//
// A Ledger is an ordered list of snapshots with a cursor marking the one
// currently displayed. Recording while the cursor is not at the end
// discards the redo future before appending; Undo and Redo only move the
// cursor and never discard anything.
//
// A Ledger is not safe for concurrent use. It is owned by a single editing
// session.
package history

import (
	"github.com/gogpu/sketch/snapshot"
)

// Option configures a Ledger.
type Option func(*Ledger)

// WithLimit caps the number of retained entries. When a Record exceeds the
// limit the oldest entries are dropped and the cursor shifts with them.
// Zero (the default) keeps everything.
func WithLimit(n int) Option {
	return func(l *Ledger) {
		if n >= 0 {
			l.limit = n
		}
	}
}

// Ledger is an undo/redo history of raster snapshots.
type Ledger struct {
	entries []snapshot.Snapshot
	cursor  int
	limit   int
}

// New returns an empty ledger. Its cursor is -1 until the first Record or
// Reset.
func New(opts ...Option) *Ledger {
	l := &Ledger{cursor: -1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record discards any entries after the cursor, appends s and moves the
// cursor to it.
func (l *Ledger) Record(s snapshot.Snapshot) {
	l.entries = append(l.entries[:l.cursor+1], s)
	l.cursor = len(l.entries) - 1

	if l.limit > 0 && len(l.entries) > l.limit {
		drop := len(l.entries) - l.limit
		clear(l.entries[:drop])
		l.entries = append(l.entries[:0], l.entries[drop:]...)
		l.cursor -= drop
	}
}

// Undo moves the cursor back one entry and returns that entry. It reports
// false, and does nothing, when the cursor is already at the start.
func (l *Ledger) Undo() (snapshot.Snapshot, bool) {
	if !l.CanUndo() {
		return snapshot.Snapshot{}, false
	}
	l.cursor--
	return l.entries[l.cursor], true
}

// Redo moves the cursor forward one entry and returns that entry. It
// reports false, and does nothing, when the cursor is at the last entry.
func (l *Ledger) Redo() (snapshot.Snapshot, bool) {
	if !l.CanRedo() {
		return snapshot.Snapshot{}, false
	}
	l.cursor++
	return l.entries[l.cursor], true
}

// Reset replaces the ledger with the single entry s.
func (l *Ledger) Reset(s snapshot.Snapshot) {
	clear(l.entries)
	l.entries = append(l.entries[:0], s)
	l.cursor = 0
}

// DiscardRedo drops every entry after the cursor.
func (l *Ledger) DiscardRedo() {
	if l.cursor+1 < len(l.entries) {
		clear(l.entries[l.cursor+1:])
		l.entries = l.entries[:l.cursor+1]
	}
}

// Current returns the entry at the cursor.
func (l *Ledger) Current() (snapshot.Snapshot, bool) {
	if l.cursor < 0 {
		return snapshot.Snapshot{}, false
	}
	return l.entries[l.cursor], true
}

// Cursor returns the cursor index, or -1 for an empty ledger.
func (l *Ledger) Cursor() int { return l.cursor }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// CanUndo reports whether Undo would move the cursor.
func (l *Ledger) CanUndo() bool { return l.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (l *Ledger) CanRedo() bool { return l.cursor >= 0 && l.cursor < len(l.entries)-1 }

// Entries returns a copy of the ledger's entries, oldest first.
func (l *Ledger) Entries() []snapshot.Snapshot {
	return append([]snapshot.Snapshot(nil), l.entries...)
}
