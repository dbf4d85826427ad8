package enumkit_test

import (
	"strconv"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/enumkit/pkg/enumkit"
	"go.llib.dev/enumkit/pkg/enumkit/enumkitcontract"
)

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("smoke", func(t *testcase.T) {
		e := enumkit.Map(enumkit.Range([]int{1, 2, 3}), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, enumkit.Collect[string](e))
	})

	s.Test("liveness follows the source", func(t *testcase.T) {
		e := enumkit.Map(enumkit.NewNullTerminated([]int{1, 0}), strconv.Itoa)
		assert.True(t, e.Live())
		e = e.Next()
		assert.False(t, e.Live())
		assertPanicWith(t, enumkit.ErrNotLive, func() { e.Value() })
	})

	s.Test("Convert", func(t *testcase.T) {
		e := enumkit.Convert[float64, int](enumkit.Range([]int{1, 2}))
		assert.Equal(t, []float64{1, 2}, enumkit.Collect[float64](e))
	})
}

func TestMapped_implementsEnumerator(t *testing.T) {
	enumkitcontract.Enumerator[string](func(tb testing.TB) enumkit.Mapped[string, int, enumkit.Counted[int]] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntB(1, 7), t.Random.Int)
		return enumkit.Map(enumkit.NewCounted(vs, len(vs)), strconv.Itoa)
	}).Test(t)
}

func TestLimit(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("bounds an infinite enumerator", func(t *testcase.T) {
		n := t.Random.IntB(1, 42)
		got := enumkit.Collect[int](enumkit.Limit[int](enumkit.Constant(7), n))
		assert.Equal(t, n, len(got))
	})

	s.Test("a shorter source ends first", func(t *testcase.T) {
		got := enumkit.Collect[int](enumkit.Limit[int](enumkit.Range([]int{1, 2}), 5))
		assert.Equal(t, []int{1, 2}, got)
	})

	s.Test("zero and negative limits", func(t *testcase.T) {
		assert.False(t, enumkit.Limit[int](enumkit.Constant(1), 0).Live())
		assert.False(t, enumkit.Limit[int](enumkit.Constant(1), -1).Live())
	})

	s.Test("advancing at the limit panics", func(t *testcase.T) {
		e := enumkit.Limit[int](enumkit.Constant(1), 1)
		e = e.Next()
		assertPanicWith(t, enumkit.ErrExhausted, func() { e.Next() })
		assertPanicWith(t, enumkit.ErrNotLive, func() { e.Value() })
	})
}

func TestLimited_implementsEnumerator(t *testing.T) {
	enumkitcontract.Enumerator[int](func(tb testing.TB) enumkit.Limited[int, enumkit.Infinite[int]] {
		t := testcase.ToT(&tb)
		return enumkit.Limit[int](enumkit.Generate(func(n int) int { return -n }), t.Random.IntB(1, 7))
	}).Test(t)
}
