package ringpick

import "errors"

var (
	ErrInvalidRadius = errors.New("radius must be at least 1px")
	ErrInvalidThick  = errors.New("thickness must be between 1px and radius")
	ErrOutputExists  = errors.New("output file already exists")
)
