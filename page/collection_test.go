// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package page

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/sketch/storage"
)

func newCollection(t *testing.T) (*Collection, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	t.Cleanup(func() { kv.Close() })
	return NewCollection(kv, ""), kv
}

func record(t *testing.T, name string) Record {
	t.Helper()
	live := &fakeSurface{shade: uint8(len(name))}
	data, err := live.Capture()
	if err != nil {
		t.Fatal(err)
	}
	return Record{ID: NewID(), Name: name, Data: data}
}

func TestCollectionEmpty(t *testing.T) {
	c, _ := newCollection(t)
	ctx := context.Background()

	if c.Key() != DefaultKey {
		t.Errorf("Key() = %q", c.Key())
	}
	records, err := c.Load(ctx)
	if err != nil || len(records) != 0 {
		t.Errorf("Load() on absent key = %v, %v", records, err)
	}
	if _, err := c.Find(ctx, "A"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestCollectionSaveFind(t *testing.T) {
	c, _ := newCollection(t)
	ctx := context.Background()
	r := record(t, "A")

	if err := c.Save(ctx, r, false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := c.Find(ctx, "A")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.ID != r.ID || got.Data.DataURL() != r.Data.DataURL() {
		t.Errorf("Find() = %+v, want the saved record", got)
	}
	if !got.Thumbnail.IsZero() {
		t.Error("absent thumbnail should stay absent")
	}
}

func TestCollectionNameCollision(t *testing.T) {
	c, kv := newCollection(t)
	ctx := context.Background()

	if err := c.Save(ctx, record(t, "A"), false); err != nil {
		t.Fatal(err)
	}
	before, _, _ := kv.Get(ctx, DefaultKey)

	if err := c.Save(ctx, record(t, "A"), false); !errors.Is(err, ErrNameExists) {
		t.Fatalf("Save(collision) error = %v, want ErrNameExists", err)
	}
	after, _, _ := kv.Get(ctx, DefaultKey)
	if before != after {
		t.Error("refused save modified the stored collection")
	}

	replacement := record(t, "A")
	if err := c.Save(ctx, replacement, true); err != nil {
		t.Fatalf("Save(overwrite) error = %v", err)
	}
	names, _ := c.Names(ctx)
	if len(names) != 1 {
		t.Errorf("Names() = %v, want a single entry", names)
	}
	if got, _ := c.Find(ctx, "A"); got.ID != replacement.ID {
		t.Error("overwrite did not replace the record")
	}
}

func TestCollectionEmptyName(t *testing.T) {
	c, _ := newCollection(t)
	if err := c.Save(context.Background(), record(t, "   "), false); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Save(blank) error = %v, want ErrEmptyName", err)
	}
}

func TestCollectionDelete(t *testing.T) {
	c, _ := newCollection(t)
	ctx := context.Background()
	for _, n := range []string{"A", "B", "C"} {
		if err := c.Save(ctx, record(t, n), false); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.Delete(ctx, "B"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	names, _ := c.Names(ctx)
	if len(names) != 2 || names[0] != "A" || names[1] != "C" {
		t.Errorf("Names() = %v, want [A C]", names)
	}
	if err := c.Delete(ctx, "B"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestCollectionLegacyRecords(t *testing.T) {
	c, kv := newCollection(t)
	ctx := context.Background()

	legacy := `[{"id":1718000000000,"name":"Old","data":null,"thumbnail":null}]`
	if err := kv.Set(ctx, DefaultKey, legacy); err != nil {
		t.Fatal(err)
	}
	got, err := c.Find(ctx, "Old")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.ID != "1718000000000" || got.ID.Valid() {
		t.Errorf("legacy id = %q", got.ID)
	}
	if !got.Data.IsZero() {
		t.Error("null data should decode as absent")
	}
}

func TestCollectionKeepsUndecodableRecord(t *testing.T) {
	c, kv := newCollection(t)
	ctx := context.Background()

	stored := `[{"id":"1","name":"old","data":"data:image/png;base64,AAAA","thumbnail":null}]`
	if err := kv.Set(ctx, DefaultKey, stored); err != nil {
		t.Fatal(err)
	}
	if err := c.Save(ctx, record(t, "fresh"), false); err != nil {
		t.Fatalf("Save() next to an undecodable record error = %v", err)
	}

	names, err := c.Names(ctx)
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != 2 || names[0] != "old" || names[1] != "fresh" {
		t.Errorf("Names() = %v, want [old fresh]", names)
	}

	fresh, err := c.Find(ctx, "fresh")
	if err != nil {
		t.Fatalf("Find(fresh) error = %v", err)
	}
	if _, err := fresh.Data.Decode(); err != nil {
		t.Errorf("healthy record does not decode: %v", err)
	}

	old, err := c.Find(ctx, "old")
	if err != nil {
		t.Fatalf("Find(old) error = %v", err)
	}
	if old.Data.Err() == nil {
		t.Error("undecodable record should report its data error")
	}
	if old.Data.DataURL() != "data:image/png;base64,AAAA" {
		t.Errorf("undecodable data rewritten as %q", old.Data.DataURL())
	}
}

func TestCollectionCorrupt(t *testing.T) {
	c, kv := newCollection(t)
	ctx := context.Background()
	if err := kv.Set(ctx, DefaultKey, "{oops"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load(ctx); err == nil {
		t.Error("Load() of corrupt collection should fail")
	}
}

func TestCollectionStorageError(t *testing.T) {
	c, kv := newCollection(t)
	kv.Close()
	if _, err := c.Load(context.Background()); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("Load() error = %v, want storage.ErrClosed", err)
	}
}
