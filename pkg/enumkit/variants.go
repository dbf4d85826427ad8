package enumkit

import (
	"math"
	"reflect"
)

// Infinite is an enumerator without a termination condition.
// It is always live, so the caller is responsible to bound the traversal,
// either by wrapping it with Limit or by composing it with a terminating enumerator.
type Infinite[T any] struct {
	at func(int) T
	i  int
}

// NewInfinite enumerates the slice with no end check.
// Reading past the end of the slice is a contract violation.
func NewInfinite[T any](vs []T) Infinite[T] {
	return Infinite[T]{at: func(i int) T { return vs[i] }}
}

// Generate enumerates fn(0), fn(1), fn(2)...
func Generate[T any](fn func(n int) T) Infinite[T] {
	return Infinite[T]{at: fn}
}

// Constant enumerates the same value forever.
func Constant[T any](v T) Infinite[T] {
	return Infinite[T]{at: func(int) T { return v }}
}

// Live is true for every constructed Infinite enumerator, and false for the zero value.
func (e Infinite[T]) Live() bool { return e.at != nil }

func (e Infinite[T]) Value() T {
	if !e.Live() {
		panic(ErrNotLive.F("%T", e))
	}
	return e.at(e.i)
}

func (e Infinite[T]) Next() Infinite[T] {
	if !e.Live() {
		panic(ErrExhausted.F("%T", e))
	}
	e.i++
	return e
}

// Index is the number of advances made since construction.
func (e Infinite[T]) Index() int { return e.i }

////////////////////////////////////////////////////////////////////////////////////////////////////

// NullTerminated is an enumerator that stops at the first zero value,
// following the convention of null-terminated buffers.
//
// For floating point element types, any value that is not IEEE normal terminates the enumeration,
// that is zero, subnormal, NaN and infinite values.
// Running out of the slice also terminates it, even without a sentinel.
type NullTerminated[T comparable] struct {
	vs    []T
	i     int
	float reflect.Kind
}

func NewNullTerminated[T comparable](vs []T) NullTerminated[T] {
	var kind reflect.Kind
	switch k := reflect.TypeFor[T]().Kind(); k {
	case reflect.Float32, reflect.Float64:
		kind = k
	}
	return NullTerminated[T]{vs: vs, float: kind}
}

func (e NullTerminated[T]) Live() bool {
	if len(e.vs) <= e.i {
		return false
	}
	return !isSentinel(e.vs[e.i], e.float)
}

func (e NullTerminated[T]) Value() T {
	if !e.Live() {
		panic(ErrNotLive.F("%T at position %d", e, e.i))
	}
	return e.vs[e.i]
}

func (e NullTerminated[T]) Next() NullTerminated[T] {
	if !e.Live() {
		panic(ErrExhausted.F("%T at position %d", e, e.i))
	}
	e.i++
	return e
}

const (
	minNormalFloat32 = 0x1p-126
	minNormalFloat64 = 0x1p-1022
)

func isSentinel[T comparable](v T, float reflect.Kind) bool {
	var zero T
	if v == zero {
		return true
	}
	switch float {
	case reflect.Float32:
		return !isNormal(reflect.ValueOf(v).Float(), minNormalFloat32)
	case reflect.Float64:
		return !isNormal(reflect.ValueOf(v).Float(), minNormalFloat64)
	default:
		return false
	}
}

func isNormal(f, minNormal float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return minNormal <= math.Abs(f)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Counted is an enumerator that stays live for a fixed number of advances.
// The remaining count is part of the value, thus copies count down independently.
type Counted[T any] struct {
	vs []T
	i  int
	n  int
}

// NewCounted enumerates the first n elements of the slice.
// A non-positive n makes a dead enumerator.
func NewCounted[T any](vs []T, n int) Counted[T] {
	return Counted[T]{vs: vs, n: n}
}

func (e Counted[T]) Live() bool { return 0 < e.n }

func (e Counted[T]) Value() T {
	if !e.Live() {
		panic(ErrNotLive.F("%T", e))
	}
	return e.vs[e.i]
}

func (e Counted[T]) Next() Counted[T] {
	if !e.Live() {
		panic(ErrExhausted.F("%T has no remaining count", e))
	}
	e.i++
	e.n--
	return e
}

// Remaining is the number of advances left before the enumerator dies.
func (e Counted[T]) Remaining() int { return e.n }

////////////////////////////////////////////////////////////////////////////////////////////////////

// EndBounded is an enumerator that stays live until its position reaches a past-the-end marker,
// the way a classic begin/end iterator pair does.
type EndBounded[T any] struct {
	vs  []T
	i   int
	end int
}

// NewEndBounded enumerates vs[begin:end].
// The end marker is captured at construction and never changes.
func NewEndBounded[T any](vs []T, begin, end int) EndBounded[T] {
	return EndBounded[T]{vs: vs, i: begin, end: end}
}

// Range enumerates the whole slice.
func Range[T any](vs []T) EndBounded[T] {
	return NewEndBounded(vs, 0, len(vs))
}

func (e EndBounded[T]) Live() bool { return e.i != e.end }

func (e EndBounded[T]) Value() T {
	if !e.Live() {
		panic(ErrNotLive.F("%T at the end marker %d", e, e.end))
	}
	return e.vs[e.i]
}

func (e EndBounded[T]) Next() EndBounded[T] {
	if !e.Live() {
		panic(ErrExhausted.F("%T at the end marker %d", e, e.end))
	}
	e.i++
	return e
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Reversed enumerates a slice backwards, from its last element to its first.
type Reversed[T any] struct {
	vs []T
	i  int
}

func Reverse[T any](vs []T) Reversed[T] {
	return Reversed[T]{vs: vs, i: len(vs) - 1}
}

func (e Reversed[T]) Live() bool { return 0 <= e.i && e.i < len(e.vs) }

func (e Reversed[T]) Value() T {
	if !e.Live() {
		panic(ErrNotLive.F("%T", e))
	}
	return e.vs[e.i]
}

func (e Reversed[T]) Next() Reversed[T] {
	if !e.Live() {
		panic(ErrExhausted.F("%T", e))
	}
	e.i--
	return e
}
