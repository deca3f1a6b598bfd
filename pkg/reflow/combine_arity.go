package reflow

// Fixed-arity combiners. These are sugar over NewCombined: each one adapts
// a positional argument list to typed parameters and nothing more. They
// cannot receive an empty source set, so they return the combined value
// directly.

// Combine2 derives a value from two sources.
func Combine2[A, B, R any](a *Value[A], b *Value[B], fn func(A, B) R, opts ...Option[R]) *Combined[R] {
	return newCombined(func() R {
		return fn(a.Get(), b.Get())
	}, []Source{a, b}, opts)
}

// Combine3 derives a value from three sources.
func Combine3[A, B, C, R any](a *Value[A], b *Value[B], c *Value[C], fn func(A, B, C) R, opts ...Option[R]) *Combined[R] {
	return newCombined(func() R {
		return fn(a.Get(), b.Get(), c.Get())
	}, []Source{a, b, c}, opts)
}

// Combine4 derives a value from four sources.
func Combine4[A, B, C, D, R any](a *Value[A], b *Value[B], c *Value[C], d *Value[D], fn func(A, B, C, D) R, opts ...Option[R]) *Combined[R] {
	return newCombined(func() R {
		return fn(a.Get(), b.Get(), c.Get(), d.Get())
	}, []Source{a, b, c, d}, opts)
}

// Combine5 derives a value from five sources.
func Combine5[A, B, C, D, E, R any](a *Value[A], b *Value[B], c *Value[C], d *Value[D], e *Value[E], fn func(A, B, C, D, E) R, opts ...Option[R]) *Combined[R] {
	return newCombined(func() R {
		return fn(a.Get(), b.Get(), c.Get(), d.Get(), e.Get())
	}, []Source{a, b, c, d, e}, opts)
}
