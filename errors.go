package sketch

import (
	"errors"

	"github.com/gogpu/sketch/page"
)

// Refusals reported through notices. They are the page package sentinels,
// so errors.Is works across both packages.
var (
	ErrSolePage   = page.ErrSolePage
	ErrNotFound   = page.ErrNotFound
	ErrNameExists = page.ErrNameExists
	ErrEmptyName  = page.ErrEmptyName
	ErrOutOfRange = page.ErrOutOfRange
)

var (
	// ErrBusy reports a pointer-down ignored because a text edit is open.
	ErrBusy = errors.New("sketch: text edit in progress")

	// ErrInvalidColor is returned by ParseColor.
	ErrInvalidColor = errors.New("sketch: invalid color")

	// ErrInvalidSettings wraps a failed Settings validation.
	ErrInvalidSettings = errors.New("sketch: invalid settings")

	// ErrUnknownAction is returned by Dispatch for an unrecognized action.
	ErrUnknownAction = errors.New("sketch: unknown action")
)
