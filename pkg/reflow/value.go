package reflow

import (
	"sync"
	"time"
)

// subscriber pairs a listener callback with the ID of its handle.
type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Value is a mutable container with equality-gated change notification.
// It remembers the value it was constructed with, so it can be reset, and
// notifies its subscribers in registration order whenever a write actually
// changes the current value.
type Value[T any] struct {
	id      uint64
	initial T
	equals  func(T, T) bool
	inst    Instrument

	// mu guards current and subs. It is never held while listeners run,
	// so listeners may freely subscribe, cancel, and write.
	mu      sync.Mutex
	current T
	subs    []subscriber[T]
}

// Option configures a Value at construction time.
type Option[T any] func(*Value[T])

// WithEquals sets a custom equality strategy. The strategy decides whether
// a write changes the value; writes of an equal value are dropped without
// notifying anyone. The default is StructuralEquals.
func WithEquals[T any](fn func(a, b T) bool) Option[T] {
	return func(v *Value[T]) {
		v.equals = fn
	}
}

// WithInstrument attaches an Instrument that observes this value's writes
// and notification waves.
func WithInstrument[T any](inst Instrument) Option[T] {
	return func(v *Value[T]) {
		v.inst = inst
	}
}

// New creates a Value holding initial. The initial value is also the reset
// target for the lifetime of the container.
func New[T any](initial T, opts ...Option[T]) *Value[T] {
	v := &Value[T]{
		id:      nextID(),
		initial: initial,
		current: initial,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Get returns the current value. No side effects.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Initial returns the value the container was constructed with.
func (v *Value[T]) Initial() T {
	return v.initial
}

// ID returns the unique identifier for this value.
func (v *Value[T]) ID() uint64 {
	return v.id
}

// Set writes a new value. If next equals the current value under the
// configured equality strategy the write is a no-op: no listener runs.
// Otherwise the current value is replaced and every subscriber registered
// at that moment is notified, in registration order, on the calling
// goroutine. Set returns only once the wave has fully settled, including
// any nested writes performed by listeners.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	if v.eq(v.current, next) {
		v.mu.Unlock()
		if v.inst != nil {
			v.inst.WriteSuppressed()
		}
		return
	}
	v.current = next
	snapshot := make([]subscriber[T], len(v.subs))
	copy(snapshot, v.subs)
	v.mu.Unlock()

	v.notify(snapshot, next)
}

// Update applies fn to the current value and writes the result, under the
// same equality gate as Set. fn runs with the value's lock held and must
// not call back into this value.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	next := fn(v.current)
	if v.eq(v.current, next) {
		v.mu.Unlock()
		if v.inst != nil {
			v.inst.WriteSuppressed()
		}
		return
	}
	v.current = next
	snapshot := make([]subscriber[T], len(v.subs))
	copy(snapshot, v.subs)
	v.mu.Unlock()

	v.notify(snapshot, next)
}

// Reset writes the initial value, subject to the usual equality gate.
func (v *Value[T]) Reset() {
	v.Set(v.initial)
}

// Subscribe registers a listener invoked on every accepted write. The same
// callback may be registered more than once; each registration fires
// independently. Listeners added while a wave is in flight do not see that
// wave.
func (v *Value[T]) Subscribe(fn func(T)) *Subscription {
	if fn == nil {
		return &Subscription{}
	}

	sub := &Subscription{id: nextID(), owner: v}
	v.mu.Lock()
	v.subs = append(v.subs, subscriber[T]{id: sub.id, fn: fn})
	v.mu.Unlock()
	return sub
}

// Unsubscribe cancels a handle obtained from this value's Subscribe.
// Handles from other values, already-cancelled handles, and nil are
// ignored.
func (v *Value[T]) Unsubscribe(sub *Subscription) {
	if sub == nil || sub.owner != subscriptionOwner(v) {
		return
	}
	sub.Cancel()
}

// Subscribers returns the number of currently registered listeners.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// notify delivers one wave to a snapshot of the subscriber list.
func (v *Value[T]) notify(snapshot []subscriber[T], next T) {
	if v.inst == nil {
		for _, s := range snapshot {
			s.fn(next)
		}
		return
	}

	v.inst.WriteAccepted(len(snapshot))
	start := time.Now()
	for _, s := range snapshot {
		s.fn(next)
	}
	v.inst.WaveDone(len(snapshot), time.Since(start))
}

// cancelSubscription removes the subscriber with the given handle ID,
// preserving registration order for the rest. Unknown IDs are a no-op.
func (v *Value[T]) cancelSubscription(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}

// attach implements Source: it subscribes a type-erased change callback.
func (v *Value[T]) attach(fn func()) *Subscription {
	return v.Subscribe(func(T) { fn() })
}

// eq applies the configured equality strategy.
func (v *Value[T]) eq(a, b T) bool {
	if v.equals != nil {
		return v.equals(a, b)
	}
	return StructuralEquals(a, b)
}
