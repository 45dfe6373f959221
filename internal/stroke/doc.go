// Package stroke converts stroked polylines into filled outlines.
//
// A stroke with round caps and round joins is the union of one quad per
// segment and one disc per vertex. The rasterizer used by the surface
// accumulates signed coverage and clamps its magnitude, so overlapping
// pieces only merge cleanly when they share an orientation. Expand
// therefore emits every piece with non-negative signed area.
//
// # Dashes
//
// Dash splits a polyline into the "on" runs of a pattern, measured by arc
// length. Split also reports the distance walked so that a stroke drawn in
// several pieces (a freehand gesture, one segment per pointer move) can
// continue the pattern where the previous piece ended:
//
//	runs, walked := dash.Split(segment)
//	dash = dash.WithOffset(dash.Offset + walked)
package stroke
