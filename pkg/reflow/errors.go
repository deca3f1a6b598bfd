package reflow

import "errors"

// ErrNoSources is returned when a combined value is constructed with an
// empty source set. The combiner is never invoked in that case; the error
// surfaces synchronously at construction.
var ErrNoSources = errors.New("reflow: combined value requires at least one source")
