package selector

import "errors"

// ErrNoOperators is returned by New when constructed with an empty operator set.
var ErrNoOperators = errors.New("selector: at least one operator is required")
