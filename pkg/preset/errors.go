package preset

import "errors"

var ErrUnknownPreset = errors.New("unknown preset")
