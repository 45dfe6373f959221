// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel raster a drawing session paints on.
//
// A Surface is a fixed-size RGBA grid with anti-aliased fills and strokes
// (golang.org/x/image/vector), text rendering, and capture/restore through
// encoded snapshots.
//
// # Drawing
//
// All strokes use round caps and round joins. A stroke is expanded into
// fill geometry (discs at vertices, quads along segments) and filled in one
// pass, so overlapping pieces of a translucent stroke do not double up.
//
//	s, _ := surface.New(800, 600)
//	s.Clear(color.White)
//	s.StrokePolyline(points, surface.StrokeStyle{
//	    Color: color.Black,
//	    Width: 5,
//	    Dash:  surface.NewDash(10, 5),
//	})
//
// # Capture and restore
//
// Capture encodes the current pixels synchronously into a lossless
// snapshot. Blit restores a snapshot asynchronously: the decode runs in the
// background and the returned Restore resolves once the pixels have been
// written (or the restore was abandoned).
//
//	r := s.Blit(snap)
//	if err := r.Wait(ctx); err != nil {
//	    // ErrDecode or ErrSuperseded
//	}
//
// Every Blit and Clear starts a new generation. A decode that completes
// after a newer generation was issued is discarded, so a slow restore can
// never overwrite a later one. Decode failures leave the pixels untouched
// and are reported both by the Restore and by Err until the next
// successful restore or Clear.
//
// # Concurrency
//
// A Surface is safe for concurrent use; every method takes the surface
// lock.
package surface
