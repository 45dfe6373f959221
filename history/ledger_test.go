// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sketch/snapshot"
)

// snaps returns n distinct snapshots.
func snaps(t *testing.T, n int) []snapshot.Snapshot {
	t.Helper()
	out := make([]snapshot.Snapshot, n)
	for i := range out {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, color.RGBA{R: uint8(i), A: 255})
		s, err := snapshot.EncodePNG(img)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = s
	}
	return out
}

func TestEmptyLedger(t *testing.T) {
	l := New()
	if l.Cursor() != -1 || l.Len() != 0 {
		t.Errorf("New() cursor = %d, len = %d; want -1, 0", l.Cursor(), l.Len())
	}
	if _, ok := l.Current(); ok {
		t.Error("Current() on empty ledger should report false")
	}
	if _, ok := l.Undo(); ok {
		t.Error("Undo() on empty ledger should report false")
	}
	if _, ok := l.Redo(); ok {
		t.Error("Redo() on empty ledger should report false")
	}
}

func TestRecordThenUndoAll(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		s := snaps(t, n+1)
		l := New()
		l.Reset(s[0])

		for i := 1; i <= n; i++ {
			l.Record(s[i])
		}
		if l.Cursor() != n {
			t.Fatalf("after %d records cursor = %d, want %d", n, l.Cursor(), n)
		}
		for i := 0; i < n; i++ {
			if _, ok := l.Undo(); !ok {
				t.Fatalf("undo %d failed", i)
			}
		}
		if got, _ := l.Current(); got != s[0] {
			t.Errorf("after %d undos Current() = %v, want initial entry", n, got)
		}
	}
}

func TestRecordAfterUndoBranches(t *testing.T) {
	s := snaps(t, 4)
	a, b, c, d := s[0], s[1], s[2], s[3]

	l := New()
	l.Record(a)
	l.Record(b)
	l.Record(c)
	l.Undo()
	l.Undo()
	l.Record(d)

	got := l.Entries()
	if len(got) != 2 || got[0] != a || got[1] != d {
		t.Errorf("entries = %v, want [A, D]", got)
	}
	if l.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", l.Cursor())
	}
}

func TestUndoRedoBounds(t *testing.T) {
	s := snaps(t, 3)
	l := New()
	l.Reset(s[0])
	l.Record(s[1])
	l.Record(s[2])

	if _, ok := l.Redo(); ok {
		t.Error("Redo() at last index should be a no-op")
	}
	if l.Cursor() != 2 {
		t.Errorf("cursor moved to %d", l.Cursor())
	}

	if got, ok := l.Undo(); !ok || got != s[1] {
		t.Errorf("Undo() = %v, %v; want s[1], true", got, ok)
	}
	if got, ok := l.Undo(); !ok || got != s[0] {
		t.Errorf("Undo() = %v, %v; want s[0], true", got, ok)
	}
	if _, ok := l.Undo(); ok {
		t.Error("Undo() at index 0 should be a no-op")
	}
	if l.Cursor() != 0 {
		t.Errorf("cursor moved to %d", l.Cursor())
	}

	// undo/redo never discard the future
	if got, ok := l.Redo(); !ok || got != s[1] {
		t.Errorf("Redo() = %v, %v; want s[1], true", got, ok)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestReset(t *testing.T) {
	s := snaps(t, 3)
	l := New()
	l.Record(s[0])
	l.Record(s[1])
	l.Reset(s[2])

	if l.Len() != 1 || l.Cursor() != 0 {
		t.Errorf("after Reset len = %d cursor = %d, want 1, 0", l.Len(), l.Cursor())
	}
	if got, _ := l.Current(); got != s[2] {
		t.Error("Reset entry is not current")
	}
	if l.CanUndo() || l.CanRedo() {
		t.Error("single-entry ledger can neither undo nor redo")
	}
}

func TestDiscardRedo(t *testing.T) {
	s := snaps(t, 3)
	l := New()
	for _, x := range s {
		l.Record(x)
	}
	l.Undo()
	l.Undo()
	l.DiscardRedo()

	if l.Len() != 1 || l.CanRedo() {
		t.Errorf("after DiscardRedo len = %d, CanRedo = %v", l.Len(), l.CanRedo())
	}
	l.DiscardRedo() // no-op at end
	if l.Len() != 1 {
		t.Errorf("second DiscardRedo changed len to %d", l.Len())
	}
}

func TestWithLimit(t *testing.T) {
	s := snaps(t, 6)
	l := New(WithLimit(3))
	for _, x := range s {
		l.Record(x)
	}

	got := l.Entries()
	if len(got) != 3 || got[0] != s[3] || got[2] != s[5] {
		t.Errorf("entries = %v, want the newest three", got)
	}
	if l.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", l.Cursor())
	}

	l.Undo()
	l.Undo()
	if _, ok := l.Undo(); ok {
		t.Error("undo past the retained window should fail")
	}
}
