package geom

import "errors"

// ErrBadMagic indicates the chunk did not start with (or contain) the
// "GEOM" magic.
var ErrBadMagic = errors.New("geom: GEOM magic not found in chunk")
