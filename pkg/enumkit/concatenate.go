package enumkit

// Concatenated yields every value of its first enumerator, then falls through to the second one.
type Concatenated[T any, A Enumerator[T, A], B Enumerator[T, B]] struct {
	first  A
	second B
}

// Concat sequences two enumerators of the same element type.
// Enumerators of different numeric element types can be aligned with Convert beforehand.
func Concat[T any, A Enumerator[T, A], B Enumerator[T, B]](first A, second B) Concatenated[T, A, B] {
	return Concatenated[T, A, B]{first: first, second: second}
}

func (c Concatenated[T, A, B]) Live() bool {
	return c.first.Live() || c.second.Live()
}

func (c Concatenated[T, A, B]) Value() T {
	if c.first.Live() {
		return c.first.Value()
	}
	return c.second.Value()
}

// Next advances only the enumerator that currently provides the value.
func (c Concatenated[T, A, B]) Next() Concatenated[T, A, B] {
	if c.first.Live() {
		c.first = c.first.Next()
	} else {
		c.second = c.second.Next()
	}
	return c
}
