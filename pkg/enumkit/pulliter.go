package enumkit

import "go.llib.dev/frameless/pkg/iterkit"

// PullIter adapts an enumerator to the iterkit.PullIter protocol,
// so enumerators can be consumed by code written against frameless' pull iterators.
//
// The first Next call reads the enumerator's current value, later calls advance it first.
// An enumerator can't fail, thus Err always returns nil.
func PullIter[T any, E Enumerator[T, E]](e E) iterkit.PullIter[T] {
	return &pullIter[T, E]{cur: e}
}

type pullIter[T any, E Enumerator[T, E]] struct {
	cur     E
	value   T
	started bool
	closed  bool
}

func (i *pullIter[T, E]) Next() bool {
	if i.closed {
		return false
	}
	if i.started {
		if !i.cur.Live() {
			return false
		}
		i.cur = i.cur.Next()
	}
	i.started = true
	if !i.cur.Live() {
		return false
	}
	i.value = i.cur.Value()
	return true
}

func (i *pullIter[T, E]) Value() T { return i.value }

func (i *pullIter[T, E]) Close() error {
	i.closed = true
	return nil
}

func (i *pullIter[T, E]) Err() error { return nil }
