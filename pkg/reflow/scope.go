package reflow

import (
	"sync"
	"sync/atomic"
)

// Disposable is anything a Scope can release on teardown. Binding,
// Combined, and Subscription all satisfy it.
type Disposable interface {
	Dispose()
}

// Scope ties reactive resources to one teardown point. Every subscribe
// performed under a scope is paired with a guaranteed unsubscribe when the
// scope is disposed, whichever way the owning code exits:
//
//	scope := reflow.NewScope(nil)
//	defer scope.Dispose()
//
//	b := reflow.NewBinding(view.Render)
//	b.Attach(model)
//	scope.Adopt(b)
//
// Scopes form a hierarchy mirroring the host's component tree: disposing a
// scope disposes its children first.
type Scope struct {
	id     uint64
	parent *Scope

	mu       sync.Mutex
	children []*Scope
	owned    []Disposable
	cleanups []func()

	disposed atomic.Bool
}

// NewScope creates a scope under parent. A nil parent creates a root scope.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(s)
	}
	return s
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsDisposed reports whether Dispose has run.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// Adopt registers a resource for release on Dispose. Adopting into an
// already disposed scope releases the resource immediately.
func (s *Scope) Adopt(d Disposable) {
	if d == nil {
		return
	}
	if s.disposed.Load() {
		d.Dispose()
		return
	}

	s.mu.Lock()
	s.owned = append(s.owned, d)
	s.mu.Unlock()
}

// OnCleanup registers a function to run when the scope is disposed.
// Cleanups run after owned resources are released, in reverse registration
// order. Registering on a disposed scope runs the function immediately.
func (s *Scope) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if s.disposed.Load() {
		fn()
		return
	}

	s.mu.Lock()
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Bind attaches a fresh binding to target under this scope and returns it.
// The binding detaches when the scope is disposed.
func Bind[T any](s *Scope, target *Value[T], render func(T), opts ...BindingOption[T]) *Binding[T] {
	b := NewBinding(render, opts...)
	b.Attach(target)
	s.Adopt(b)
	return b
}

// addChild registers a child scope.
func (s *Scope) addChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = append(s.children, child)
}

// removeChild drops a child scope from the list.
func (s *Scope) removeChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Dispose releases everything the scope owns: children first (newest
// first), then owned resources and cleanups, each in reverse registration
// order. Dispose is idempotent.
func (s *Scope) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.mu.Lock()
	children := s.children
	owned := s.owned
	cleanups := s.cleanups
	s.children = nil
	s.owned = nil
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for i := len(owned) - 1; i >= 0; i-- {
		owned[i].Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
