package distmatrix

import "errors"

// ErrIndexOutOfBounds is returned by At/Set when row or col falls outside [0, n).
var ErrIndexOutOfBounds = errors.New("distmatrix: index out of bounds")
