package reflow

// Source is an upstream a Combined value can depend on. Both *Value[T] and
// *Combined[R] satisfy it, so derived values can be chained.
type Source interface {
	attach(fn func()) *Subscription
}

// Combined is a Value whose content is recomputed from a declared set of
// sources. It subscribes to every source at construction; whenever any of
// them notifies, the combiner runs over the current values of all sources
// and the result is written through the inherited Set — so Combined only
// notifies its own subscribers when the recombined result actually differs.
//
// A panic in the combiner propagates to the caller of the upstream write;
// the combined value keeps its last successfully computed content.
type Combined[R any] struct {
	*Value[R]

	recompute func() R
	upstream  []*Subscription
	closed    bool
}

// NewCombined builds a derived value from a recompute function and the
// sources that should trigger it. The initial content is computed
// immediately, before any source subscription is installed. An empty source
// set fails with ErrNoSources before recompute is ever called.
//
// Sources are not deduplicated: passing the same source twice installs two
// upstream registrations, and each fires independently.
func NewCombined[R any](recompute func() R, sources []Source, opts ...Option[R]) (*Combined[R], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	return newCombined(recompute, sources, opts), nil
}

// CombineAll builds a derived value from a homogeneous source slice,
// handing the combiner the current values of every source in order.
func CombineAll[T, R any](sources []*Value[T], fn func([]T) R, opts ...Option[R]) (*Combined[R], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	erased := make([]Source, len(sources))
	for i, s := range sources {
		erased[i] = s
	}
	recompute := func() R {
		latest := make([]T, len(sources))
		for i, s := range sources {
			latest[i] = s.Get()
		}
		return fn(latest)
	}
	return newCombined(recompute, erased, opts), nil
}

// newCombined wires a derived value to a known non-empty source set.
func newCombined[R any](recompute func() R, sources []Source, opts []Option[R]) *Combined[R] {
	c := &Combined[R]{
		Value:     New(recompute(), opts...),
		recompute: recompute,
	}
	c.upstream = make([]*Subscription, 0, len(sources))
	for _, s := range sources {
		c.upstream = append(c.upstream, s.attach(c.onSourceChanged))
	}
	return c
}

// onSourceChanged recomputes from all sources and writes the result.
func (c *Combined[R]) onSourceChanged() {
	c.Set(c.recompute())
}

// Close removes the upstream registrations so the combined value no longer
// reacts to its sources. Its own subscribers stay registered and its
// content remains readable and writable. Close is idempotent.
func (c *Combined[R]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, sub := range c.upstream {
		sub.Cancel()
	}
	c.upstream = nil
}

// Dispose implements Disposable for Scope ownership.
func (c *Combined[R]) Dispose() {
	c.Close()
}
