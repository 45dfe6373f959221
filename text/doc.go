// Package text turns overlay strings into filled glyph outlines.
//
// Text goes through three stages:
//
//  1. Normalize: the string is converted to NFC so that composed and
//     decomposed input render identically.
//  2. Shape: HarfBuzz shaping (go-text/typesetting) maps runes to
//     positioned glyphs, applying kerning and ligatures.
//  3. Outline: each glyph's contours are loaded from the font
//     (golang.org/x/image/font/sfnt) into a geom.Path in surface
//     coordinates, ready to be filled.
//
// Fonts come from a small registry of families. The Go fonts are
// registered by default; common CSS names ("Arial", "Courier New",
// "monospace") resolve to the closest Go font, and unknown names fall back
// to the default family the way a browser canvas does.
//
//	face, err := text.NewFace("Courier New", 24)
//	path, err := face.Outline("hello", geom.Pt(10, 10+face.Metrics().Ascent))
package text
