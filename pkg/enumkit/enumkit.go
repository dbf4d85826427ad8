// Package enumkit provides enumerators and a small algebra to compose them.
//
// # Summary
//
// An Enumerator is a read-only, forward-only cursor over a sequence.
// Unlike a begin/end iterator pair, an enumerator knows by itself whether it still points at a readable element,
// which it reports through Live.
//
// Every enumerator is a plain value type.
// Advancing returns the successor enumerator instead of mutating a shared state,
// so copying an enumerator with a simple assignment yields an independent cursor.
// Combinators hold their operands by value and are generic over the concrete operand types,
// thus composing them involves no dynamic dispatch.
//
// The consumption protocol is always the same: check, read, advance.
//
//	for e := enumkit.Range(vs); e.Live(); e = e.Next() {
//		use(e.Value())
//	}
//
// # Contract violations
//
// Reading a dead enumerator panics with ErrNotLive.
// Advancing a terminated leaf enumerator panics with ErrExhausted.
// Both are programming errors, not runtime conditions to recover from.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package enumkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"golang.org/x/exp/constraints"
)

const (
	// ErrNotLive is the panic cause when a dead enumerator's value is read.
	ErrNotLive errorkit.Error = "enumerator is not live"
	// ErrExhausted is the panic cause when a terminated enumerator is advanced.
	ErrExhausted errorkit.Error = "enumerator is exhausted"
)

// Enumerator is the capability set of a cursor that yields T values
// and advances into its successor of type E.
//
// E is the enumerator's own type, which keeps every composition statically typed.
type Enumerator[T, E any] interface {
	// Live reports whether the enumerator points at a readable element.
	// It is pure and can be called any number of times.
	Live() bool
	// Value returns the current element.
	// Calling it on a dead enumerator is a contract violation.
	Value() T
	// Next returns the enumerator advanced by one position.
	// The receiver is left untouched.
	Next() E
}

// Real is the set of element types the arithmetic combinators work with.
type Real interface {
	constraints.Integer | constraints.Float
}

// Advance moves the enumerator forward in place,
// and returns the enumerator as it was before the move.
func Advance[E interface{ Next() E }](e *E) E {
	prev := *e
	*e = prev.Next()
	return prev
}

// Seq turns the enumerator into an iter.Seq.
// The enumerator is copied, so the returned sequence can be iterated multiple times.
func Seq[T any, E Enumerator[T, E]](e E) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := e; c.Live(); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect reads all the remaining values of a terminating enumerator.
func Collect[T any, E Enumerator[T, E]](e E) []T {
	return iterkit.Collect(Seq[T](e))
}

// Reduce folds the remaining values of a terminating enumerator into a single result.
func Reduce[R, T any, E Enumerator[T, E]](e E, initial R, fn func(R, T) R) R {
	return iterkit.Reduce1(Seq[T](e), initial, fn)
}
