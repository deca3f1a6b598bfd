// Package reflow provides a synchronous reactive-value primitive.
//
// The reactive system is deliberately explicit: there is no automatic
// dependency tracking. A value's consumers subscribe to it directly, and
// derived values declare their sources at construction time.
//
// # Core Types
//
// Value[T] is a mutable container with equality-gated change notification:
//
//	count := reflow.New(0)
//	v := count.Get()        // Read
//	count.Set(5)            // Write (notifies subscribers if changed)
//	count.Reset()           // Back to the initial value
//
// Combined[R] is a value recomputed from declared sources whenever any of
// them changes:
//
//	label := reflow.Combine2(count, name, func(n int, s string) string {
//	    return fmt.Sprintf("%d:%s", n, s)
//	})
//
// Binding[T] adapts a value to a render cycle, re-rendering only when a
// change is significant under its predicate:
//
//	b := reflow.NewBinding(func(n int) { view.ShowCount(n) })
//	b.Attach(count)
//	defer b.Detach()
//
// Scope ties any number of bindings, combined values, and subscriptions to
// one teardown point:
//
//	scope := reflow.NewScope(nil)
//	defer scope.Dispose()
//
// # Propagation Model
//
// Notification is fully synchronous and depth-first: Set returns only after
// every transitively dependent listener has run. Listeners fire in
// registration order against a snapshot of the subscriber list taken when
// the wave starts, so listeners may subscribe, cancel, and write values
// (including the one being notified) without corrupting the traversal.
//
// The library assumes one logical thread of control per value graph. The
// subscriber registry tolerates many holders, but hosts that write from
// multiple goroutines must add their own serialization.
package reflow
