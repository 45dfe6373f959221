// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the 2D geometry shared by the drawing core:
// points, paths built from lines and Bezier curves, and flattening of
// paths into polylines for stroking.
//
// All coordinates are surface-local pixels with the origin at the
// top-left corner and Y growing down.
package geom
