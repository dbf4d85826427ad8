package enumkit

// Mapped transforms every value of its source enumerator.
type Mapped[V, T any, E Enumerator[T, E]] struct {
	fn  func(T) V
	src E
}

func Map[V, T any, E Enumerator[T, E]](src E, fn func(T) V) Mapped[V, T, E] {
	return Mapped[V, T, E]{fn: fn, src: src}
}

// Convert changes the element type of a numeric enumerator.
// It is the explicit form of numeric promotion when element types have to match, as with Concat.
func Convert[V, T Real, E Enumerator[T, E]](src E) Mapped[V, T, E] {
	return Map(src, func(v T) V { return V(v) })
}

func (m Mapped[V, T, E]) Live() bool { return m.fn != nil && m.src.Live() }

func (m Mapped[V, T, E]) Value() V { return m.fn(m.src.Value()) }

func (m Mapped[V, T, E]) Next() Mapped[V, T, E] {
	m.src = m.src.Next()
	return m
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Limited bounds its source enumerator to at most n values.
// It is the usual way to take a finite part of an Infinite enumerator.
type Limited[T any, E Enumerator[T, E]] struct {
	src E
	n   int
}

func Limit[T any, E Enumerator[T, E]](src E, n int) Limited[T, E] {
	return Limited[T, E]{src: src, n: n}
}

func (l Limited[T, E]) Live() bool { return 0 < l.n && l.src.Live() }

func (l Limited[T, E]) Value() T {
	if !l.Live() {
		panic(ErrNotLive.F("%T", l))
	}
	return l.src.Value()
}

func (l Limited[T, E]) Next() Limited[T, E] {
	if !l.Live() {
		panic(ErrExhausted.F("%T", l))
	}
	l.src = l.src.Next()
	l.n--
	return l
}
