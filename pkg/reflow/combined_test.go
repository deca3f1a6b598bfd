package reflow

import (
	"errors"
	"fmt"
	"testing"
)

func TestCombinedEmptySources(t *testing.T) {
	ran := false
	_, err := NewCombined(func() int {
		ran = true
		return 0
	}, nil)
	if !errors.Is(err, ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
	if ran {
		t.Error("combiner ran despite construction error")
	}

	_, err = CombineAll(nil, func(vs []int) int {
		ran = true
		return 0
	})
	if !errors.Is(err, ErrNoSources) {
		t.Fatalf("expected ErrNoSources from CombineAll, got %v", err)
	}
	if ran {
		t.Error("combiner ran despite construction error")
	}
}

func TestCombine2(t *testing.T) {
	a := New(1)
	b := New("")
	combines := 0
	label := Combine2(a, b, func(n int, s string) string {
		combines++
		return fmt.Sprintf("%d:%s", n, s)
	})

	if label.Get() != "1:" {
		t.Errorf("initial combined value %q, want %q", label.Get(), "1:")
	}
	if combines != 1 {
		t.Errorf("expected 1 initial combination, got %d", combines)
	}

	a.Set(2)
	if label.Get() != "2:" {
		t.Errorf("after a write, got %q, want %q", label.Get(), "2:")
	}
	b.Set("x")
	if label.Get() != "2:x" {
		t.Errorf("after b write, got %q, want %q", label.Get(), "2:x")
	}
	if combines != 3 {
		t.Errorf("expected exactly one recombination per upstream write, got %d total", combines)
	}
}

func TestCombinedEqualityGate(t *testing.T) {
	n := New(4)
	rec := &recorder[int]{}
	halved := Combine2(n, New(0), func(a, _ int) int { return a / 2 })
	halved.Subscribe(rec.record)

	// 4/2 == 5/2 == 2: the recombined result is unchanged, so the
	// combined value must not notify its own subscribers.
	n.Set(5)
	if rec.count() != 0 {
		t.Errorf("unchanged result notified, count %d", rec.count())
	}

	n.Set(6)
	if rec.count() != 1 || rec.values[0] != 3 {
		t.Errorf("expected one notification with 3, got %v", rec.values)
	}
}

func TestCombinedAliasedSources(t *testing.T) {
	n := New(1)
	combines := 0
	c, err := NewCombined(func() int {
		combines++
		return n.Get() * 2
	}, []Source{n, n})
	if err != nil {
		t.Fatal(err)
	}

	combines = 0
	n.Set(2)

	// The same source registered twice fires once per registration.
	if combines != 2 {
		t.Errorf("aliased source recombined %d times, want 2", combines)
	}
	if c.Get() != 4 {
		t.Errorf("combined value %d, want 4", c.Get())
	}
}

func TestCombinedChainSettlesDepthFirst(t *testing.T) {
	src := New(1)
	doubled := Combine2(src, New(0), func(a, _ int) int { return a * 2 })
	rec := &recorder[string]{}
	label := Combine2(doubled.Value, New("x"), func(n int, s string) string {
		return fmt.Sprintf("%s%d", s, n)
	})
	label.Subscribe(rec.record)

	src.Set(3)

	// By the time Set returns, the full chain has settled.
	if label.Get() != "x6" {
		t.Errorf("chained value %q, want %q", label.Get(), "x6")
	}
	if rec.count() != 1 || rec.values[0] != "x6" {
		t.Errorf("expected one delivery of x6, got %v", rec.values)
	}
}

func TestCombinedClose(t *testing.T) {
	a := New(1)
	c := Combine2(a, New(2), func(x, y int) int { return x + y })

	c.Close()
	a.Set(10)
	if c.Get() != 3 {
		t.Errorf("closed combined value recomputed to %d", c.Get())
	}
	if a.Subscribers() != 0 {
		t.Errorf("upstream registration survived Close, %d left", a.Subscribers())
	}
	c.Close() // idempotent
}

func TestCombinedCombinerPanic(t *testing.T) {
	n := New(1)
	c := Combine2(n, New(0), func(a, _ int) int {
		if a < 0 {
			panic("negative input")
		}
		return a * 10
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("combiner panic did not reach the Set caller")
			}
		}()
		n.Set(-1)
	}()

	// The combined value keeps its last successfully computed content.
	if c.Get() != 10 {
		t.Errorf("combined value after panic is %d, want 10", c.Get())
	}

	n.Set(3)
	if c.Get() != 30 {
		t.Errorf("combined value did not recover, got %d", c.Get())
	}
}

func TestCombineAll(t *testing.T) {
	vs := []*Value[int]{New(1), New(2), New(3)}
	sum, err := CombineAll(vs, func(ns []int) int {
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Get() != 6 {
		t.Errorf("initial sum %d, want 6", sum.Get())
	}

	vs[1].Set(5)
	if sum.Get() != 9 {
		t.Errorf("sum after write %d, want 9", sum.Get())
	}
}

func TestCombineHigherArities(t *testing.T) {
	a, b, c := New(1), New(2), New(3)
	d, e := New(4), New(5)

	c3 := Combine3(a, b, c, func(x, y, z int) int { return x + y + z })
	if c3.Get() != 6 {
		t.Errorf("Combine3 got %d, want 6", c3.Get())
	}

	c4 := Combine4(a, b, c, d, func(w, x, y, z int) int { return w + x + y + z })
	if c4.Get() != 10 {
		t.Errorf("Combine4 got %d, want 10", c4.Get())
	}

	c5 := Combine5(a, b, c, d, e, func(v, w, x, y, z int) int { return v + w + x + y + z })
	if c5.Get() != 15 {
		t.Errorf("Combine5 got %d, want 15", c5.Get())
	}

	a.Set(10)
	if c3.Get() != 15 || c4.Get() != 19 || c5.Get() != 24 {
		t.Errorf("after write got %d/%d/%d, want 15/19/24", c3.Get(), c4.Get(), c5.Get())
	}
}
