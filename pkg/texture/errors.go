package texture

import "errors"

var (
	ErrInvalidSize       = errors.New("texture size must be positive")
	ErrInvalidRadius     = errors.New("circle radius must not be negative")
	ErrRegionOutOfBounds = errors.New("circle region does not fit in the texture")
)
