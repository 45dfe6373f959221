package stroke

import (
	"github.com/gogpu/sketch/geom"
)

// Expander converts stroked geometry with round caps and round joins into
// fill geometry.
type Expander struct {
	width     float64
	tolerance float64
}

// NewExpander creates an expander for strokes of the given width.
func NewExpander(width float64) *Expander {
	return &Expander{width: width, tolerance: geom.Tolerance}
}

// SetTolerance sets the flattening tolerance for curved input.
// Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Width returns the stroke width.
func (e *Expander) Width() float64 {
	return e.width
}

// Expand returns the outline of line. Every subpath of the result is closed
// and has non-negative signed area, so the outline can be filled with a
// non-zero (or absolute-coverage) rule.
func (e *Expander) Expand(line geom.Polyline) *geom.Path {
	out := geom.NewPath()
	e.expandInto(out, line)
	return out
}

// ExpandPath flattens p and expands each of its subpaths.
func (e *Expander) ExpandPath(p *geom.Path) *geom.Path {
	out := geom.NewPath()
	for _, line := range p.Flatten(e.tolerance) {
		e.expandInto(out, line)
	}
	return out
}

func (e *Expander) expandInto(out *geom.Path, line geom.Polyline) {
	hw := e.width / 2
	if hw <= 0 || len(line.Points) == 0 {
		return
	}

	pts := line.Points
	for _, p := range dedupe(pts) {
		out.Circle(p, hw)
	}
	for i := 1; i < len(pts); i++ {
		segment(out, pts[i-1], pts[i], hw)
	}
	if line.Closed && len(pts) > 2 {
		segment(out, pts[len(pts)-1], pts[0], hw)
	}
}

// segment appends the quad covering a→b, oriented positively.
func segment(out *geom.Path, a, b geom.Point, hw float64) {
	d := b.Sub(a)
	if d.Length() < 1e-9 {
		return
	}
	n := d.Normalize().Perp().Mul(hw)
	quad := []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	if SignedArea(quad) < 0 {
		quad[0], quad[1], quad[2], quad[3] = quad[3], quad[2], quad[1], quad[0]
	}
	out.Polygon(quad...)
}

// dedupe drops consecutive duplicate points so that stationary pointer
// samples do not stack discs.
func dedupe(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == pts[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SignedArea returns the shoelace area of the closed polygon pts. In Y-down
// surface coordinates a positive result means clockwise on screen.
func SignedArea(pts []geom.Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}
