// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/snapshot"
)

// DefaultCacheSize is the number of decoded snapshots kept for fast
// restores.
const DefaultCacheSize = 8

// Option configures a Surface.
type Option func(*options)

type options struct {
	thumbnailWidth int
	cacheSize      int
	tolerance      float64
}

func defaultOptions() options {
	return options{
		thumbnailWidth: snapshot.DefaultThumbnailWidth,
		cacheSize:      DefaultCacheSize,
		tolerance:      geom.Tolerance,
	}
}

// WithThumbnailWidth sets the maximum thumbnail width. Non-positive values
// keep thumbnails at full size.
func WithThumbnailWidth(w int) Option {
	return func(o *options) {
		o.thumbnailWidth = w
	}
}

// WithCacheSize sets how many decoded snapshots are retained.
// Zero disables the limit.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
func WithTolerance(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.tolerance = t
		}
	}
}
