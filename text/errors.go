package text

import "errors"

var (
	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("text: invalid font")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")
)
