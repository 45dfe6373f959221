// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"

	"github.com/gogpu/sketch/internal/stroke"
)

// Dash is a dash pattern: alternating dash and gap lengths, with an offset
// into the pattern. Odd-length arrays repeat ([5] is [5, 5]).
type Dash = stroke.Dash

// NewDash creates a dash pattern. It returns nil (a solid line) for an
// empty or all-zero pattern.
func NewDash(lengths ...float64) *Dash {
	return stroke.NewDash(lengths...)
}

// StrokeStyle describes how to stroke a line.
type StrokeStyle struct {
	Color color.Color
	Width float64
	// Dash is nil for a solid line.
	Dash *Dash
	// Opacity scales the colour's alpha. Zero means fully opaque.
	Opacity float64
}

// FillStyle describes how to fill a region.
type FillStyle struct {
	Color color.Color
	// Opacity scales the colour's alpha. Zero means fully opaque.
	Opacity float64
}

// paint resolves a colour and opacity into the non-premultiplied source
// colour handed to the rasterizer.
func paint(c color.Color, opacity float64) color.NRGBA {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if opacity > 0 && opacity < 1 {
		n.A = uint8(float64(n.A)*opacity + 0.5)
	}
	return n
}
