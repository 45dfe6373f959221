// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package page

import "errors"

var (
	// ErrSolePage is returned when deleting the only open page.
	ErrSolePage = errors.New("page: cannot delete the only page")

	// ErrOutOfRange is returned for a page index outside the store.
	ErrOutOfRange = errors.New("page: index out of range")

	// ErrNotFound is returned when no saved page has the requested name.
	ErrNotFound = errors.New("page: not found")

	// ErrNameExists is returned when saving under a taken name without
	// overwrite.
	ErrNameExists = errors.New("page: name already exists")

	// ErrEmptyName is returned for blank page names.
	ErrEmptyName = errors.New("page: empty name")
)
