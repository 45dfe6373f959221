package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sketch/geom"
)

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Outline returns the filled outline of s with the left end of its
// baseline at origin. Glyphs missing from the font are skipped.
func (f *Face) Outline(s string, origin geom.Point) (*geom.Path, error) {
	path := geom.NewPath()

	var buf sfnt.Buffer
	ppem := toFixed(f.size)
	for _, g := range f.Shape(s) {
		segments, err := f.family.outl.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("text: load glyph %d: %w", g.ID, err)
		}
		appendSegments(path, segments, origin.Add(geom.Pt(g.X, g.Y)))
	}
	return path, nil
}

func appendSegments(path *geom.Path, segments sfnt.Segments, at geom.Point) {
	pt := func(p fixed.Point26_6) geom.Point {
		return geom.Pt(at.X+fromFixed(p.X), at.Y+fromFixed(p.Y))
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			p := pt(seg.Args[0])
			path.MoveTo(p.X, p.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			p := pt(seg.Args[0])
			path.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			c, p := pt(seg.Args[0]), pt(seg.Args[1])
			path.QuadTo(c.X, c.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, p := pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2])
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		path.Close()
	}
}
