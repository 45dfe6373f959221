// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package page

import (
	"fmt"

	"github.com/gogpu/sketch/snapshot"
)

// Capturer produces the snapshots that persist a page.
type Capturer interface {
	Capture() (snapshot.Snapshot, error)
	CaptureThumbnail() (snapshot.Snapshot, error)
}

// Store is the ordered list of open pages. It always holds at least one
// page, and its current index is always valid.
type Store struct {
	pages   []Page
	current int
}

// NewStore returns a store holding a single blank page.
func NewStore() *Store {
	return &Store{pages: []Page{New(defaultName(1))}}
}

func defaultName(n int) string {
	return fmt.Sprintf("Drawing %d", n)
}

// Pages returns a copy of the open pages in order.
func (s *Store) Pages() []Page {
	return append([]Page(nil), s.pages...)
}

// Len returns the number of open pages.
func (s *Store) Len() int { return len(s.pages) }

// CurrentIndex returns the index of the current page.
func (s *Store) CurrentIndex() int { return s.current }

// Current returns the current page.
func (s *Store) Current() Page { return s.pages[s.current] }

// Page returns the page at index i.
func (s *Store) Page(i int) (Page, error) {
	if err := s.check(i); err != nil {
		return Page{}, err
	}
	return s.pages[i], nil
}

// IndexOfID returns the index of the page with the given ID, or -1.
func (s *Store) IndexOfID(id ID) int {
	for i, p := range s.pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.pages) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(s.pages))
	}
	return nil
}

// Persist captures live into the current page.
func (s *Store) Persist(live Capturer) error {
	data, err := live.Capture()
	if err != nil {
		return fmt.Errorf("page: persist: %w", err)
	}
	thumb, err := live.CaptureThumbnail()
	if err != nil {
		return fmt.Errorf("page: persist thumbnail: %w", err)
	}
	p := &s.pages[s.current]
	p.Data = data
	p.Thumbnail = thumb
	return nil
}

// Create persists the current page, then appends a blank page named
// "Drawing N" and makes it current.
func (s *Store) Create(live Capturer) (Page, error) {
	return s.Append(New(defaultName(len(s.pages)+1)), live)
}

// Append persists the current page, then appends p and makes it current.
func (s *Store) Append(p Page, live Capturer) (Page, error) {
	if err := s.Persist(live); err != nil {
		return Page{}, err
	}
	s.pages = append(s.pages, p)
	s.current = len(s.pages) - 1
	return p, nil
}

// Select persists the current page and makes page i current, returning it.
// An out-of-range index changes nothing.
func (s *Store) Select(i int, live Capturer) (Page, error) {
	if err := s.check(i); err != nil {
		return Page{}, err
	}
	if err := s.Persist(live); err != nil {
		return Page{}, err
	}
	s.current = i
	return s.pages[i], nil
}

// Delete removes page i and makes page min(i, Len()-1) current, returning
// it. The current page is persisted first unless it is the one being
// deleted. Deleting the only page returns ErrSolePage and changes nothing.
func (s *Store) Delete(i int, live Capturer) (Page, error) {
	if len(s.pages) == 1 {
		return Page{}, ErrSolePage
	}
	if err := s.check(i); err != nil {
		return Page{}, err
	}
	if i != s.current {
		if err := s.Persist(live); err != nil {
			return Page{}, err
		}
	}

	s.pages = append(s.pages[:i], s.pages[i+1:]...)
	s.current = min(i, len(s.pages)-1)
	return s.pages[s.current], nil
}

// Rename sets the name of page i.
func (s *Store) Rename(i int, name string) error {
	if err := s.check(i); err != nil {
		return err
	}
	name, err := CleanName(name)
	if err != nil {
		return err
	}
	s.pages[i].Name = name
	return nil
}

// Replace overwrites page i.
func (s *Store) Replace(i int, p Page) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.pages[i] = p
	return nil
}
