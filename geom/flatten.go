// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Tolerance is the default maximum distance between a curve and its
// flattened approximation, in pixels.
const Tolerance = 0.1

// maxDepth bounds curve subdivision.
const maxDepth = 16

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines made of straight segments,
// one per subpath. Curves are subdivided until they are within tolerance.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var (
		lines   []Polyline
		cur     *Polyline
		current Point
	)
	ensure := func() {
		if cur == nil {
			lines = append(lines, Polyline{Points: []Point{current}})
			cur = &lines[len(lines)-1]
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			lines = append(lines, Polyline{Points: []Point{e.Point}})
			cur = &lines[len(lines)-1]
			current = e.Point

		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point

		case QuadTo:
			ensure()
			flattenQuadratic(current, e.Control, e.Point, tolerance, 0, &cur.Points)
			current = e.Point

		case CubicTo:
			ensure()
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, 0, &cur.Points)
			current = e.Point

		case Close:
			if cur != nil {
				cur.Closed = true
				current = cur.Points[0]
				cur = nil
			}
		}
	}

	return lines
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve,
// appending end points of the resulting segments.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadratic(q2, q1, p2, tolerance, depth+1, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLen2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
