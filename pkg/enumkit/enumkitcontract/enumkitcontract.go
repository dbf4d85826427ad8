package enumkitcontract

import (
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/enumkit/pkg/enumkit"
)

// maxSteps bounds how far the contract walks an enumerator, so infinite enumerators can be checked as well.
const maxSteps = 1024

// Enumerator checks the read-check-advance protocol of an enumerator implementation.
// The enumerator made by mk must be live.
func Enumerator[T any, E enumkit.Enumerator[T, E]](mk func(testing.TB) E) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) E {
		return mk(t)
	})

	s.Then("the made enumerator is live", func(t *testcase.T) {
		assert.True(t, subject.Get(t).Live())
	})

	s.Then("Live has no side effect", func(t *testcase.T) {
		e := subject.Get(t)
		t.Random.Repeat(2, 7, func() {
			assert.True(t, e.Live())
		})
		assert.Equal(t, subject.Get(t).Value(), e.Value())
	})

	s.Then("Value is repeatable", func(t *testcase.T) {
		e := subject.Get(t)
		assert.Equal(t, e.Value(), e.Value())
	})

	s.Then("Next leaves the receiver untouched", func(t *testcase.T) {
		e := subject.Get(t)
		exp := e.Value()
		_ = e.Next()
		assert.True(t, e.Live())
		assert.Equal(t, exp, e.Value())
	})

	s.Then("a copy advances independently from the value it was copied from", func(t *testcase.T) {
		b := subject.Get(t)
		exp := b.Value()

		c := b
		for i := 0; i < maxSteps && c.Live(); i++ {
			c = c.Next()
		}

		assert.True(t, b.Live())
		assert.Equal(t, exp, b.Value())
	})

	s.Then("Advance returns the state before the move", func(t *testcase.T) {
		e := subject.Get(t)
		exp := e.Value()
		prev := enumkit.Advance(&e)
		assert.True(t, prev.Live())
		assert.Equal(t, exp, prev.Value())
	})

	s.Then("the zero value is not live", func(t *testcase.T) {
		var zero E
		assert.False(t, zero.Live())
	})

	s.Then("reading an exhausted enumerator panics", func(t *testcase.T) {
		e := subject.Get(t)
		for i := 0; i < maxSteps && e.Live(); i++ {
			e = e.Next()
		}
		if e.Live() {
			t.Skip("the enumerator didn't terminate within the step limit")
		}
		out := assert.Panic(t, func() { e.Value() })
		err, ok := out.(error)
		assert.True(t, ok, "error value was expected as panic cause")
		assert.ErrorIs(t, err, enumkit.ErrNotLive)
	})

	s.Context("iter.Seq", iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[T] {
		return enumkit.Seq[T](enumkit.Limit[T](mk(tb), maxSteps))
	}).Spec)

	return s.AsSuite(fmt.Sprintf("Enumerator[%T]", *new(E)))
}
