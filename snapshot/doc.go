// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snapshot holds immutable, encoded copies of a raster.
//
// A Snapshot is a small comparable value wrapping a pointer to an encoded
// image. Copying a Snapshot never copies pixels, and two snapshots compare
// equal only when they are the same capture. The zero Snapshot is "absent":
// a page that has never been drawn on, or a ledger slot with nothing in it.
//
// Full captures are lossless PNG. Thumbnails are low-quality JPEG,
// downscaled for list views:
//
//	full, err := snapshot.EncodePNG(img)
//	thumb, err := snapshot.EncodeThumbnail(img, snapshot.DefaultThumbnailWidth)
//
// Both serialize as data URLs ("data:image/png;base64,..."), which is also
// their JSON form. An absent snapshot marshals as null.
package snapshot
