// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package page

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gogpu/sketch/storage"
)

// DefaultKey is the storage key holding saved pages.
const DefaultKey = "paintingAppPages"

// Collection is the persisted list of saved pages, keyed by name.
type Collection struct {
	kv  storage.KV
	key string
}

// NewCollection returns a collection stored under key in kv. An empty key
// selects DefaultKey.
func NewCollection(kv storage.KV, key string) *Collection {
	if key == "" {
		key = DefaultKey
	}
	return &Collection{kv: kv, key: key}
}

// Key returns the storage key of the collection.
func (c *Collection) Key() string {
	return c.key
}

// Load returns every saved record. An absent key is an empty collection.
func (c *Collection) Load(ctx context.Context) ([]Record, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("page: load collection: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("page: decode collection %q: %w", c.key, err)
	}
	return records, nil
}

func (c *Collection) store(ctx context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("page: encode collection: %w", err)
	}
	if err := c.kv.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("page: store collection: %w", err)
	}
	return nil
}

// Names returns the saved names in collection order.
func (c *Collection) Names(ctx context.Context) ([]string, error) {
	records, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names, nil
}

// Find returns the first record saved under name.
func (c *Collection) Find(ctx context.Context, name string) (Record, error) {
	records, err := c.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	if i := indexOfName(records, name); i >= 0 {
		return records[i], nil
	}
	return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Save stores r under r.Name. If the name is taken, the existing record is
// replaced when overwrite is set and ErrNameExists is returned otherwise,
// leaving the collection untouched.
func (c *Collection) Save(ctx context.Context, r Record, overwrite bool) error {
	name, err := CleanName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	if i := indexOfName(records, name); i >= 0 {
		if !overwrite {
			return fmt.Errorf("%w: %q", ErrNameExists, name)
		}
		records[i] = r
	} else {
		records = append(records, r)
	}
	return c.store(ctx, records)
}

// Delete removes the record saved under name.
func (c *Collection) Delete(ctx context.Context, name string) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}
	i := indexOfName(records, name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.store(ctx, append(records[:i], records[i+1:]...))
}

func indexOfName(records []Record, name string) int {
	for i, r := range records {
		if r.Name == name {
			return i
		}
	}
	return -1
}
