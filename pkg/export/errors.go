package export

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("inkscape did not produce the output file")
)
