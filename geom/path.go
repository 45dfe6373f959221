// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Element is a single element of a Path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Path is an ordered list of path elements in surface coordinates.
// The zero value is an empty path ready to use.
type Path struct {
	elements []Element
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]Element, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a line to (x, y). On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []Element {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Polyline adds an open subpath through pts.
func (p *Path) Polyline(pts ...Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
}

// Polygon adds a closed subpath through pts.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.Polyline(pts...)
	p.Close()
}

// Rectangle adds an axis-aligned box with corners a and b.
// Width and height may be negative.
func (p *Path) Rectangle(a, b Point) {
	p.Polygon(a, Pt(b.X, a.Y), b, Pt(a.X, b.Y))
}

// Circle adds a full circle using four cubic Bezier arcs.
func (p *Path) Circle(c Point, r float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	offset := r * k
	cx, cy := c.X, c.Y

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Translate returns a copy of the path moved by d.
func (p *Path) Translate(d Point) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X+d.X, e.Point.Y+d.Y)
		case LineTo:
			result.LineTo(e.Point.X+d.X, e.Point.Y+d.Y)
		case QuadTo:
			result.QuadTo(e.Control.X+d.X, e.Control.Y+d.Y, e.Point.X+d.X, e.Point.Y+d.Y)
		case CubicTo:
			result.CubicTo(e.Control1.X+d.X, e.Control1.Y+d.Y,
				e.Control2.X+d.X, e.Control2.Y+d.Y,
				e.Point.X+d.X, e.Point.Y+d.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Append adds all elements of q to p.
func (p *Path) Append(q *Path) {
	if q.IsEmpty() {
		return
	}
	p.elements = append(p.elements, q.elements...)
	p.start = q.start
	p.current = q.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = append(result.elements, p.elements...)
	result.start = p.start
	result.current = p.current
	return result
}
