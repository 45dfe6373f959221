// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package page

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.jetify.com/typeid/v2"

	"github.com/gogpu/sketch/snapshot"
)

// IDPrefix is the typeid prefix of page identifiers.
const IDPrefix = "page"

// ID is a stable page identifier: a time-ordered typeid such as
// "page_01h455vb4pex5vsknk084sn02q". IDs written by older versions may be
// plain numbers; they decode as their decimal string.
type ID string

// NewID returns a fresh page identifier.
func NewID() ID {
	return ID(typeid.MustGenerate(IDPrefix).String())
}

// Valid reports whether id is a typeid with the page prefix.
func (id ID) Valid() bool {
	parsed, err := typeid.Parse(string(id))
	return err == nil && parsed.Prefix() == IDPrefix
}

// UnmarshalJSON accepts a string or a number.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '"' && !bytes.Equal(b, []byte("null")) {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("page: id: %w", err)
		}
		*id = ID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("page: id: %w", err)
	}
	*id = ID(s)
	return nil
}

// Page is one drawing document.
type Page struct {
	ID   ID
	Name string
	// Data is the full raster, absent until the page is first persisted.
	Data snapshot.Snapshot
	// Thumbnail is a low-fidelity preview for page lists.
	Thumbnail snapshot.Snapshot
}

// New returns a blank page with a fresh ID.
func New(name string) Page {
	return Page{ID: NewID(), Name: name}
}

// Record returns the persisted form of p.
func (p Page) Record() Record {
	return Record{ID: p.ID, Name: p.Name, Data: p.Data, Thumbnail: p.Thumbnail}
}

// Record is the JSON form of a saved page.
type Record struct {
	ID        ID                `json:"id"`
	Name      string            `json:"name"`
	Data      snapshot.Snapshot `json:"data"`
	Thumbnail snapshot.Snapshot `json:"thumbnail"`
}

// Page returns the page described by r.
func (r Record) Page() Page {
	return Page{ID: r.ID, Name: r.Name, Data: r.Data, Thumbnail: r.Thumbnail}
}

// CleanName trims a user-supplied name and rejects blank ones.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
