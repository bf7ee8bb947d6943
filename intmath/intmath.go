// Package intmath implements overflow-checked integer arithmetic.
//
// Every function returns the result and a bool reporting whether the
// result is representable in T. The bool is false on overflow, on
// unsigned underflow, on a zero divisor, and on the two's-complement
// wrap of dividing (or multiplying) the most negative value by -1.
package intmath

import "golang.org/x/exp/constraints"

// Add returns a+b and whether the sum fits in T.
func Add[T constraints.Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Sub returns a-b and whether the difference fits in T.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

// Mul returns a*b and whether the product fits in T.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	// The quotient round-trip catches every wrap except the most
	// negative value times -1, which wraps back to itself. That case
	// leaves a negative product where both operands were negative.
	if prod/b != a || (a < 0 && b < 0 && prod < 0) {
		return 0, false
	}
	return prod, true
}

// Div returns a/b and whether the quotient fits in T. The bool is false
// when b is zero and when the quotient is unrepresentable, which for
// integers only happens dividing the most negative value by -1.
func Div[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	quo := a / b
	// Two negative operands must yield a non-negative quotient; the
	// most-negative / -1 wrap is the only way to see one here.
	if a < 0 && b < 0 && quo < 0 {
		return 0, false
	}
	return quo, true
}
