package reflow

import "reflect"

// StructuralEquals is the default equality strategy for values and for the
// default rebuild predicate. It uses == for the common comparable types and
// falls back to reflect.DeepEqual for slices, maps, structs, and everything
// else.
func StructuralEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Identity returns an equality strategy that compares referential identity
// instead of structure. Slices, maps, channels, funcs, and pointers compare
// by header/pointer; comparable types compare with ==; non-comparable
// value types are never identical.
//
// Use it with WithEquals when a mutable container is stored in a value and
// in-place mutation followed by a Set of the same header must not count as
// a change:
//
//	list := reflow.New([]int{1}, reflow.WithEquals(reflow.Identity[[]int]()))
func Identity[T any]() func(a, b T) bool {
	return func(a, b T) bool {
		va := reflect.ValueOf(a)
		vb := reflect.ValueOf(b)
		if !va.IsValid() || !vb.IsValid() {
			return va.IsValid() == vb.IsValid()
		}
		if va.Kind() != vb.Kind() {
			return false
		}
		switch va.Kind() {
		case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
			if va.IsNil() || vb.IsNil() {
				return va.IsNil() && vb.IsNil()
			}
			return va.Pointer() == vb.Pointer()
		}
		if va.Comparable() && vb.Comparable() {
			return va.Equal(vb)
		}
		return false
	}
}
