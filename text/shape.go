package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a shaped glyph positioned relative to the start of the run, in
// Y-down pixel coordinates.
type Glyph struct {
	ID      uint16
	X, Y    float64
	Advance float64
	// Cluster is the index of the first rune this glyph came from.
	Cluster int
}

// HarfbuzzShaper is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts s into positioned glyphs. The run is laid out left to
// right on a single line; the script is taken from the first non-space rune.
func (f *Face) Shape(s string) []Glyph {
	if s == "" {
		return nil
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face carries per-call caches and is not safe to share.
		Face:     gtfont.NewFace(f.family.shaper),
		Size:     toFixed(f.size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID: uint16(g.GlyphID), //nolint:gosec // glyph indices fit in uint16 for TrueType
			X:  x + fromFixed(g.XOffset),
			// shaper offsets are Y-up
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv
	}
	return glyphs
}

// Measure returns the advance width of s.
func (f *Face) Measure(s string) float64 {
	var w float64
	for _, g := range f.Shape(s) {
		w += g.Advance
	}
	return w
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
