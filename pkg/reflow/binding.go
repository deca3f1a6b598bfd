package reflow

// Binding adapts a Value to a render cycle. While attached it tracks the
// newest value it has observed and invokes the render callback whenever a
// change is significant under its predicate. The observed value may be
// swapped for another instance of the same element type at any time.
//
// Binding follows the library's single-thread contract: attach, detach,
// and the writes that drive it are expected on one goroutine.
type Binding[T any] struct {
	render        func(T)
	shouldRebuild func(prev, next T) bool
	inst          Instrument

	target   *Value[T]
	sub      *Subscription
	lastSeen T
}

// BindingOption configures a Binding at construction time.
type BindingOption[T any] func(*Binding[T])

// WithShouldRebuild sets the predicate deciding whether a change warrants a
// re-render. It receives the last rendered-or-observed value and the new
// one. The default is negated StructuralEquals, matching the write gate, so
// a binding never renders for a value the source did not actually change.
func WithShouldRebuild[T any](fn func(prev, next T) bool) BindingOption[T] {
	return func(b *Binding[T]) {
		b.shouldRebuild = fn
	}
}

// WithRenderInstrument attaches an Instrument whose Rebuild callback fires
// on every accepted re-render.
func WithRenderInstrument[T any](inst Instrument) BindingOption[T] {
	return func(b *Binding[T]) {
		b.inst = inst
	}
}

// NewBinding creates a detached binding around a render callback.
func NewBinding[T any](render func(T), opts ...BindingOption[T]) *Binding[T] {
	b := &Binding[T]{render: render}
	for _, opt := range opts {
		opt(b)
	}
	if b.shouldRebuild == nil {
		b.shouldRebuild = func(prev, next T) bool {
			return !StructuralEquals(prev, next)
		}
	}
	return b
}

// Attach subscribes the binding to target and renders target's current
// value immediately. If the binding is already attached to a different
// value it detaches from that one first; the old value's last-seen state is
// discarded in favor of the new target's current value. Attaching to the
// value already observed is a no-op.
func (b *Binding[T]) Attach(target *Value[T]) {
	if b.target == target && b.sub != nil {
		return
	}
	b.Detach()

	b.target = target
	b.lastSeen = target.Get()
	b.sub = target.Subscribe(func(T) { b.onChanged() })
	b.applyRender(b.lastSeen)
}

// onChanged handles one notification from the attached value. It always
// advances lastSeen to the value's current content, so a suppressed render
// still leaves the next comparison against the true latest value.
func (b *Binding[T]) onChanged() {
	if b.target == nil {
		return
	}
	prev := b.lastSeen
	next := b.target.Get()
	b.lastSeen = next
	if b.shouldRebuild(prev, next) {
		b.applyRender(next)
	}
}

// Detach unsubscribes from the attached value. Detaching a detached
// binding is a no-op, so teardown paths may call it unconditionally.
func (b *Binding[T]) Detach() {
	if b.sub != nil {
		b.sub.Cancel()
		b.sub = nil
	}
	b.target = nil
}

// Dispose implements Disposable for Scope ownership.
func (b *Binding[T]) Dispose() {
	b.Detach()
}

// Attached reports whether the binding currently observes a value.
func (b *Binding[T]) Attached() bool {
	return b.sub != nil
}

// Target returns the currently observed value, or nil when detached.
func (b *Binding[T]) Target() *Value[T] {
	return b.target
}

// Last returns the newest value the binding has observed, rendered or not.
func (b *Binding[T]) Last() T {
	return b.lastSeen
}

func (b *Binding[T]) applyRender(next T) {
	if b.inst != nil {
		b.inst.Rebuild()
	}
	b.render(next)
}
