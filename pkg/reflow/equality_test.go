package reflow

import "testing"

func TestStructuralEqualsPrimitives(t *testing.T) {
	if !StructuralEquals(1, 1) || StructuralEquals(1, 2) {
		t.Error("int equality wrong")
	}
	if !StructuralEquals("a", "a") || StructuralEquals("a", "b") {
		t.Error("string equality wrong")
	}
	if !StructuralEquals(true, true) || StructuralEquals(true, false) {
		t.Error("bool equality wrong")
	}
	if !StructuralEquals(1.5, 1.5) || StructuralEquals(1.5, 2.5) {
		t.Error("float equality wrong")
	}
}

func TestStructuralEqualsCompound(t *testing.T) {
	if !StructuralEquals([]int{1, 2}, []int{1, 2}) {
		t.Error("equal-content slices must be structurally equal")
	}
	if StructuralEquals([]int{1, 2}, []int{2, 1}) {
		t.Error("different slices reported equal")
	}

	type point struct{ X, Y int }
	if !StructuralEquals(point{1, 2}, point{1, 2}) {
		t.Error("equal structs reported unequal")
	}
	if !StructuralEquals(map[string]int{"a": 1}, map[string]int{"a": 1}) {
		t.Error("equal maps reported unequal")
	}
}

func TestIdentitySlices(t *testing.T) {
	eq := Identity[[]int]()
	a := []int{1, 2}
	b := []int{1, 2}

	if !eq(a, a) {
		t.Error("slice must be identical to itself")
	}
	if eq(a, b) {
		t.Error("distinct headers with equal contents reported identical")
	}
	if !eq(nil, nil) {
		t.Error("two nil slices must be identical")
	}
	if eq(a, nil) {
		t.Error("nil and non-nil reported identical")
	}
}

func TestIdentityPointersAndComparables(t *testing.T) {
	type box struct{ n int }
	p1 := &box{1}
	p2 := &box{1}

	peq := Identity[*box]()
	if !peq(p1, p1) || peq(p1, p2) {
		t.Error("pointer identity wrong")
	}

	ieq := Identity[int]()
	if !ieq(3, 3) || ieq(3, 4) {
		t.Error("comparable identity falls back to ==")
	}
}
