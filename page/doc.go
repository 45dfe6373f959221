// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package page holds the documents of a drawing session.
//
// A Store is the ordered list of open pages with a current-page cursor. It
// is never empty. A Collection is the persisted list of saved pages, kept
// as one JSON document under a single key of a storage.KV and always read
// and written wholesale.
//
// Neither type touches pixels. Persisting the current page goes through a
// Capturer, normally the live surface:
//
//	next, err := store.Select(2, surf)
//	// next.Data is what the surface should now show
package page
