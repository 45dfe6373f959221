// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Thumbnail defaults.
const (
	DefaultThumbnailWidth = 160
	ThumbnailQuality      = 10
)

// Downscale returns img scaled to at most maxWidth pixels wide, keeping the
// aspect ratio, composited over white. Images already narrow enough are
// copied at their own size.
func Downscale(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = max(1, h*maxWidth/w)
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// EncodeThumbnail downscales img and encodes it as a low-quality JPEG.
func EncodeThumbnail(img image.Image, maxWidth int) (Snapshot, error) {
	return EncodeJPEG(Downscale(img, maxWidth), ThumbnailQuality)
}
