// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

var (
	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("surface: invalid dimensions")

	// ErrDecode wraps failures to decode a snapshot during a restore.
	ErrDecode = errors.New("surface: snapshot decode failed")

	// ErrSuperseded is returned by a restore that was overtaken by a newer
	// Blit or Clear before its pixels were written.
	ErrSuperseded = errors.New("surface: restore superseded")
)
