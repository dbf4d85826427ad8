package enumkit

// Binary combines two enumerators elementwise with a binary function.
// Both operands advance in lockstep, and the result is live only while both operands are live.
type Binary[V, T, U any, A Enumerator[T, A], B Enumerator[U, B]] struct {
	fn    func(T, U) V
	left  A
	right B
}

// Binop builds an enumerator of fn(left[i], right[i]) values.
func Binop[V, T, U any, A Enumerator[T, A], B Enumerator[U, B]](fn func(T, U) V, left A, right B) Binary[V, T, U, A, B] {
	return Binary[V, T, U, A, B]{fn: fn, left: left, right: right}
}

func (b Binary[V, T, U, A, B]) Live() bool {
	return b.fn != nil && b.left.Live() && b.right.Live()
}

func (b Binary[V, T, U, A, B]) Value() V {
	return b.fn(b.left.Value(), b.right.Value())
}

// Next advances both operands unconditionally.
// Advancing a Binary whose operand is already dead is a contract violation,
// so liveness must be checked before each advance.
func (b Binary[V, T, U, A, B]) Next() Binary[V, T, U, A, B] {
	b.left = b.left.Next()
	b.right = b.right.Next()
	return b
}

// Left returns the left operand at its current position.
func (b Binary[V, T, U, A, B]) Left() A { return b.left }

// Right returns the right operand at its current position.
func (b Binary[V, T, U, A, B]) Right() B { return b.right }

// Add yields left[i] + right[i], with both operands promoted to V.
//
// V must be the common type of T and U, the one able to represent values of both.
// Go performs no implicit promotion, so a narrower V, such as int for float64 operands,
// truncates the operands before the operation.
func Add[V, T, U Real, A Enumerator[T, A], B Enumerator[U, B]](left A, right B) Binary[V, T, U, A, B] {
	return Binop(promote[V, T, U](add[V]), left, right)
}

// Sub yields left[i] - right[i], with both operands promoted to V.
// As with Add, V must be the common type of T and U.
func Sub[V, T, U Real, A Enumerator[T, A], B Enumerator[U, B]](left A, right B) Binary[V, T, U, A, B] {
	return Binop(promote[V, T, U](sub[V]), left, right)
}

// Mul yields left[i] * right[i], with both operands promoted to V.
// As with Add, V must be the common type of T and U.
func Mul[V, T, U Real, A Enumerator[T, A], B Enumerator[U, B]](left A, right B) Binary[V, T, U, A, B] {
	return Binop(promote[V, T, U](mul[V]), left, right)
}

// Div yields left[i] / right[i], with both operands promoted to V.
// As with Add, V must be the common type of T and U.
// An integer division by zero panics as Go's division operator does.
func Div[V, T, U Real, A Enumerator[T, A], B Enumerator[U, B]](left A, right B) Binary[V, T, U, A, B] {
	return Binop(promote[V, T, U](div[V]), left, right)
}

// Equal yields whether left[i] equals right[i] once both are promoted to V.
// As with Add, V must be the common type of T and U.
func Equal[V, T, U Real, A Enumerator[T, A], B Enumerator[U, B]](left A, right B) Binary[bool, T, U, A, B] {
	return Binop(promote[V, T, U](eq[V]), left, right)
}

func promote[V, T, U Real, R any](op func(V, V) R) func(T, U) R {
	return func(t T, u U) R { return op(V(t), V(u)) }
}

func add[T Real](a, b T) T { return a + b }

func sub[T Real](a, b T) T { return a - b }

func mul[T Real](a, b T) T { return a * b }

func div[T Real](a, b T) T { return a / b }

func eq[T Real](a, b T) bool { return a == b }
