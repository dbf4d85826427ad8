package enumkit

// Accumulated is a running fold over its source enumerator.
// Its value is the accumulator, not the source's current element.
type Accumulated[T any, E Enumerator[T, E]] struct {
	op  func(T, T) T
	src E
	acc T
}

// Accumulate folds op over the source values: op(seed, v0), op(op(seed, v0), v1)...
//
// The seed is consumed, not emitted: when the source is live,
// the very first value of the accumulated enumerator already includes one fold.
func Accumulate[T any, E Enumerator[T, E]](op func(T, T) T, src E, seed T) Accumulated[T, E] {
	a := Accumulated[T, E]{op: op, src: src, acc: seed}
	if src.Live() {
		a.acc = op(seed, src.Value())
	}
	return a
}

// Sum is the running sum of the source values.
func Sum[T Real, E Enumerator[T, E]](src E) Accumulated[T, E] {
	return SumFrom[T](src, 0)
}

func SumFrom[T Real, E Enumerator[T, E]](src E, seed T) Accumulated[T, E] {
	return Accumulate(add[T], src, seed)
}

// Product is the running product of the source values.
func Product[T Real, E Enumerator[T, E]](src E) Accumulated[T, E] {
	return ProductFrom[T](src, 1)
}

func ProductFrom[T Real, E Enumerator[T, E]](src E, seed T) Accumulated[T, E] {
	return Accumulate(mul[T], src, seed)
}

// Live follows the source liveness, it is evaluated on every call.
func (a Accumulated[T, E]) Live() bool {
	return a.op != nil && a.src.Live()
}

func (a Accumulated[T, E]) Value() T {
	if !a.Live() {
		panic(ErrNotLive.F("%T", a))
	}
	return a.acc
}

// Next advances the source and folds its next value into the accumulator.
// Once the source is dead, Next is a no-op.
func (a Accumulated[T, E]) Next() Accumulated[T, E] {
	if !a.Live() {
		return a
	}
	a.src = a.src.Next()
	if a.src.Live() {
		a.acc = a.op(a.acc, a.src.Value())
	}
	return a
}

// Source returns the wrapped source enumerator at its current position.
func (a Accumulated[T, E]) Source() E { return a.src }
