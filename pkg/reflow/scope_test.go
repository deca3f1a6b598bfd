package reflow

import "testing"

func TestScopeDisposeReleasesBindings(t *testing.T) {
	v := New(1)
	scope := NewScope(nil)
	rec := &recorder[int]{}

	Bind(scope, v, rec.record)
	if rec.count() != 1 {
		t.Fatalf("expected attach render, got %d", rec.count())
	}
	if v.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", v.Subscribers())
	}

	scope.Dispose()
	if v.Subscribers() != 0 {
		t.Errorf("dispose left %d subscribers", v.Subscribers())
	}

	v.Set(2)
	if rec.count() != 1 {
		t.Errorf("disposed binding rendered, %d renders", rec.count())
	}

	scope.Dispose() // idempotent
	if !scope.IsDisposed() {
		t.Error("scope not marked disposed")
	}
}

func TestScopeReverseOrderTeardown(t *testing.T) {
	scope := NewScope(nil)
	var order []string

	scope.OnCleanup(func() { order = append(order, "first") })
	scope.OnCleanup(func() { order = append(order, "second") })

	a := New(1)
	sub := a.Subscribe(func(int) {})
	scope.Adopt(sub)

	child := NewScope(scope)
	child.OnCleanup(func() { order = append(order, "child") })

	scope.Dispose()

	// Children first, then owned resources, then cleanups newest-first.
	want := []string{"child", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("teardown order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("teardown order %v, want %v", order, want)
		}
	}
	if a.Subscribers() != 0 {
		t.Errorf("adopted subscription survived dispose")
	}
	if !child.IsDisposed() {
		t.Error("child scope not disposed with parent")
	}
}

func TestScopeAdoptAfterDispose(t *testing.T) {
	scope := NewScope(nil)
	scope.Dispose()

	v := New(1)
	sub := v.Subscribe(func(int) {})
	scope.Adopt(sub)
	if v.Subscribers() != 0 {
		t.Error("adoption into a disposed scope must release immediately")
	}

	ran := false
	scope.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup on a disposed scope must run immediately")
	}
}

func TestScopeOwnsCombined(t *testing.T) {
	a := New(1)
	scope := NewScope(nil)

	c := Combine2(a, New(2), func(x, y int) int { return x + y })
	scope.Adopt(c)

	scope.Dispose()
	if a.Subscribers() != 0 {
		t.Errorf("combined upstream registration survived scope dispose")
	}
	if c.Get() != 3 {
		t.Errorf("combined content changed on dispose, got %d", c.Get())
	}
}

func TestScopeChildDetachesFromParent(t *testing.T) {
	parent := NewScope(nil)
	child := NewScope(parent)

	// Disposing the child must not dispose the parent, and the parent
	// must not re-dispose the child later.
	child.Dispose()
	if parent.IsDisposed() {
		t.Error("child dispose took down the parent")
	}

	ran := 0
	child.OnCleanup(func() { ran++ })
	if ran != 1 {
		t.Fatalf("cleanup on disposed child ran %d times", ran)
	}

	parent.Dispose()
	if ran != 1 {
		t.Errorf("parent dispose re-ran child cleanups, %d total", ran)
	}
}
