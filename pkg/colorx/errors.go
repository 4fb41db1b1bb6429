package colorx

import "errors"

var (
	ErrMissingPrefix = errors.New("hex color must start with #")
	ErrOverflow      = errors.New("hex color value overflows 64 bits")
)
