// Package polykit provides polynomial families as function-valued enumerators.
package polykit

import (
	"go.llib.dev/frameless/pkg/synckit"
	"golang.org/x/exp/constraints"

	"go.llib.dev/enumkit/pkg/enumkit"
)

// Func is a univariate polynomial.
type Func[X constraints.Float] func(x X) X

// Hermite returns the probabilists' Hermite polynomial of order n.
//
//	He(0, x) = 1
//	He(1, x) = x
//	He(n+1, x) = x He(n, x) - n He(n-1, x)
func Hermite[X constraints.Float](n uint) Func[X] {
	switch n {
	case 0:
		return func(X) X { return 1 }
	case 1:
		return func(x X) X { return x }
	}
	return func(x X) X {
		prev, cur := X(1), x
		for k := uint(1); k < n; k++ {
			prev, cur = cur, x*cur-X(k)*prev
		}
		return cur
	}
}

// Table memoizes Hermite polynomials by their order.
// The zero value is ready to use, and it is safe for concurrent use.
type Table[X constraints.Float] struct {
	polys synckit.Map[uint, Func[X]]
}

// H returns the memoized Hermite polynomial of order n.
func (t *Table[X]) H(n uint) Func[X] {
	return t.polys.GetOrInit(n, func() Func[X] { return Hermite[X](n) })
}

// Len is the number of memoized polynomials.
func (t *Table[X]) Len() int {
	return t.polys.Len()
}

// Polynomials enumerates He(0), He(1), He(2)...
func (t *Table[X]) Polynomials() enumkit.Infinite[Func[X]] {
	return enumkit.Generate(func(n int) Func[X] { return t.H(uint(n)) })
}

// At enumerates He(0, x), He(1, x), He(2, x)...
func (t *Table[X]) At(x X) enumkit.Infinite[X] {
	return enumkit.Generate(func(n int) X { return t.H(uint(n))(x) })
}
