// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/internal/cache"
	"github.com/gogpu/sketch/internal/stroke"
	"github.com/gogpu/sketch/shape"
	"github.com/gogpu/sketch/snapshot"
	"github.com/gogpu/sketch/text"
)

// Surface is a CPU raster backed by an *image.RGBA.
type Surface struct {
	mu  sync.Mutex
	img *image.RGBA
	ras vector.Rasterizer

	// gen is bumped by every Blit and Clear; a restore only writes pixels
	// if its generation is still current.
	gen uint64
	err error

	decoded *cache.Cache[snapshot.Snapshot, *image.RGBA]
	opts    options
}

// New creates a transparent surface with the given dimensions.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		decoded: cache.New[snapshot.Snapshot, *image.RGBA](o.cacheSize),
		opts:    o,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.Bounds().Dy()
}

// Bounds returns the surface rectangle, anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.Bounds()
}

// At returns the pixel at (x, y), or transparent outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.RGBAAt(x, y)
}

// Clear overwrites every pixel with c. Any in-flight restore is superseded
// and the decode error state is reset.
func (s *Surface) Clear(c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.err = nil
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over the rectangle r, clipped to the surface.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// FillPath fills the interior of p.
func (s *Surface) FillPath(p *geom.Path, style FillStyle) {
	if p.IsEmpty() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill(p, paint(style.Color, style.Opacity))
}

// StrokePolyline strokes the open polyline through points. A single point
// draws a round dot of the stroke width.
func (s *Surface) StrokePolyline(points []geom.Point, style StrokeStyle) {
	if len(points) == 0 || style.Width <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill(outline(points, style), paint(style.Color, style.Opacity))
}

// StrokePath strokes every subpath of p.
func (s *Surface) StrokePath(p *geom.Path, style StrokeStyle) {
	if p.IsEmpty() || style.Width <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strokePath(p, style)
}

func (s *Surface) strokePath(p *geom.Path, style StrokeStyle) {
	out := geom.NewPath()
	for _, line := range p.Flatten(s.opts.tolerance) {
		pts := line.Points
		if line.Closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		out.Append(outline(pts, style))
	}
	s.fill(out, paint(style.Color, style.Opacity))
}

// outline expands the dashed runs of pts into fill geometry.
func outline(pts []geom.Point, style StrokeStyle) *geom.Path {
	exp := stroke.NewExpander(style.Width)
	runs, _ := style.Dash.Split(pts)

	out := geom.NewPath()
	for _, run := range runs {
		out.Append(exp.Expand(geom.Polyline{Points: run}))
	}
	return out
}

// DrawShape stamps kind from c1 to c2. Filled shapes use the stroke colour
// and opacity; Line and Arrow always stroke.
func (s *Surface) DrawShape(kind shape.Kind, c1, c2 geom.Point, fill bool, style StrokeStyle) {
	ops := kind.Ops(c1, c2, fill)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range ops {
		switch op.Mode {
		case shape.Fill:
			s.fill(op.Path, paint(style.Color, style.Opacity))
		case shape.Stroke:
			if style.Width > 0 {
				s.strokePath(op.Path, style)
			}
		}
	}
}

// DrawText renders str with its top-left corner at at: the baseline sits
// face.Metrics().Ascent below at.Y.
func (s *Surface) DrawText(str string, at geom.Point, face *text.Face, c color.Color) error {
	if str == "" {
		return nil
	}
	p, err := face.Outline(str, at.Add(geom.Pt(0, face.Metrics().Ascent)))
	if err != nil {
		return fmt.Errorf("surface: draw text: %w", err)
	}
	if p.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fill(p, paint(c, 1))
	return nil
}

// fill rasterizes p with non-zero coverage and composites c over the
// surface. Caller must hold s.mu.
func (s *Surface) fill(p *geom.Path, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over

	open := false
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case geom.MoveTo:
			if open {
				s.ras.ClosePath()
			}
			s.ras.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case geom.LineTo:
			s.ras.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case geom.QuadTo:
			s.ras.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case geom.CubicTo:
			s.ras.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case geom.Close:
			s.ras.ClosePath()
			open = false
		}
	}
	if open {
		s.ras.ClosePath()
	}
	s.ras.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

// Capture encodes the current pixels losslessly.
func (s *Surface) Capture() (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := snapshot.EncodePNG(s.img)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("surface: capture: %w", err)
	}
	// A capture is usually restored soon (preview, undo); skip the decode.
	s.decoded.Set(snap, cloneRGBA(s.img))
	return snap, nil
}

// CaptureThumbnail encodes a downscaled, lossy copy of the current pixels.
func (s *Surface) CaptureThumbnail() (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := snapshot.EncodeThumbnail(s.img, s.opts.thumbnailWidth)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("surface: thumbnail: %w", err)
	}
	return snap, nil
}

// Resize reallocates the surface, keeping existing content anchored at the
// origin. New area is transparent.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b := s.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), s.img, image.Point{}, draw.Src)
	s.img = img
	slogger().Debug("surface resized", "width", width, "height", height)
	return nil
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRGBA(s.img)
}

// EncodePNG writes the current pixels to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	img := s.Image()
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}

// Err returns the failure of the most recent restore, or nil. It is reset
// by a successful restore and by Clear.
func (s *Surface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
