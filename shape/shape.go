// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape turns a drag gesture (two corner points and a fill flag)
// into the raster operations that stamp a geometric shape.
//
// Every Kind is a pure function of its inputs: calling Ops twice with the
// same arguments yields identical paths, and nothing touches pixels until a
// surface executes the returned operations.
package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/sketch/geom"
)

// Kind identifies a stampable shape.
type Kind uint8

const (
	// Rectangle is an axis-aligned box with corners at both points.
	Rectangle Kind = iota
	// Circle is centred on the first point, radius reaching the second.
	Circle
	// Triangle is isosceles with its apex at the first point.
	Triangle
	// Line is a straight segment between the points.
	Line
	// Arrow is a Line with a head at the second point.
	Arrow
	// Star is a five-point star centred on the first point.
	Star

	kindCount
)

// Arrow head geometry.
const (
	ArrowHeadLength = 15.0
	ArrowHeadAngle  = math.Pi / 6
)

// Star geometry.
const (
	StarPoints      = 5
	StarInnerRatio  = 0.5
	starStep        = math.Pi / StarPoints
	starFirstVertex = 3 * math.Pi / 2 // straight up in Y-down coordinates
)

var kindNames = [kindCount]string{
	Rectangle: "rectangle",
	Circle:    "circle",
	Triangle:  "triangle",
	Line:      "line",
	Arrow:     "arrow",
	Star:      "star",
}

// String returns the lowercase shape name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is a known shape.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Kinds returns all shapes in palette order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a shape name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("shape: unknown kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("shape: invalid kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Mode selects how an Op's path is rendered.
type Mode uint8

const (
	// Stroke outlines the path with the current stroke style.
	Stroke Mode = iota
	// Fill paints the interior of the path.
	Fill
)

// Op is one raster operation: a path and how to render it.
type Op struct {
	Mode Mode
	Path *geom.Path
}

// Ops returns the raster operations that draw kind from c1 to c2.
// Line and Arrow always stroke, whatever fill says.
func (k Kind) Ops(c1, c2 geom.Point, fill bool) []Op {
	mode := Stroke
	if fill {
		mode = Fill
	}

	switch k {
	case Rectangle:
		return []Op{{Mode: mode, Path: rectangle(c1, c2)}}
	case Circle:
		return []Op{{Mode: mode, Path: circle(c1, c2)}}
	case Triangle:
		return []Op{{Mode: mode, Path: triangle(c1, c2)}}
	case Line:
		return []Op{{Mode: Stroke, Path: line(c1, c2)}}
	case Arrow:
		return []Op{
			{Mode: Stroke, Path: line(c1, c2)},
			{Mode: Stroke, Path: arrowHead(c1, c2)},
		}
	case Star:
		return []Op{{Mode: mode, Path: star(c1, c2)}}
	}
	return nil
}

func rectangle(c1, c2 geom.Point) *geom.Path {
	p := geom.NewPath()
	p.Rectangle(c1, c2)
	return p
}

func circle(c1, c2 geom.Point) *geom.Path {
	p := geom.NewPath()
	p.Circle(c1, c1.Distance(c2))
	return p
}

// TriangleVertices returns the apex, the second corner and its mirror
// across the vertical line through the apex.
func TriangleVertices(c1, c2 geom.Point) [3]geom.Point {
	return [3]geom.Point{c1, c2, geom.Pt(2*c1.X-c2.X, c2.Y)}
}

func triangle(c1, c2 geom.Point) *geom.Path {
	v := TriangleVertices(c1, c2)
	p := geom.NewPath()
	p.Polygon(v[:]...)
	return p
}

func line(c1, c2 geom.Point) *geom.Path {
	p := geom.NewPath()
	p.Polyline(c1, c2)
	return p
}

// ArrowHead returns the two barb end points of an arrow from c1 to c2.
func ArrowHead(c1, c2 geom.Point) [2]geom.Point {
	angle := math.Atan2(c2.Y-c1.Y, c2.X-c1.X)
	return [2]geom.Point{
		geom.Pt(c2.X-ArrowHeadLength*math.Cos(angle-ArrowHeadAngle), c2.Y-ArrowHeadLength*math.Sin(angle-ArrowHeadAngle)),
		geom.Pt(c2.X-ArrowHeadLength*math.Cos(angle+ArrowHeadAngle), c2.Y-ArrowHeadLength*math.Sin(angle+ArrowHeadAngle)),
	}
}

func arrowHead(c1, c2 geom.Point) *geom.Path {
	barbs := ArrowHead(c1, c2)
	p := geom.NewPath()
	p.Polyline(c2, barbs[0])
	p.Polyline(c2, barbs[1])
	return p
}

// StarVertices returns the ten vertices of the star, alternating outer and
// inner, starting with the outer vertex straight above the centre.
func StarVertices(c1, c2 geom.Point) []geom.Point {
	outer := c1.Distance(c2)
	inner := outer * StarInnerRatio

	vertices := make([]geom.Point, 0, 2*StarPoints)
	rot := starFirstVertex
	for i := 0; i < StarPoints; i++ {
		vertices = append(vertices, c1.Polar(outer, rot))
		rot += starStep
		vertices = append(vertices, c1.Polar(inner, rot))
		rot += starStep
	}
	return vertices
}

func star(c1, c2 geom.Point) *geom.Path {
	p := geom.NewPath()
	p.Polygon(StarVertices(c1, c2)...)
	return p
}
