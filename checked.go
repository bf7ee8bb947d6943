// Package checked provides arithmetic on integer values that remember
// overflow.
//
// Wrap turns a plain integer into a Checked value. The four arithmetic
// operators are named methods; each returns a new Checked value that is
// absent when the operation overflowed, underflowed, or divided by zero,
// and absence carries through every later operation in a chain:
//
//	a, b := checked.Wrap2(uint8(10), uint8(20))
//	a.Add(b)           // Some(30)
//	b.Mul(b)           // None, 400 does not fit in uint8
//	b.DivVal(0)        // None
//	a.SubVal(20)       // None, unsigned underflow
//	a.Sub(b).AddVal(1) // None, the failed subtraction absorbs
//
// Raw operands are accepted on the right-hand side only, through the
// *Val methods. Failure is never a panic or an error value; inspect a
// result with Unwrap, EqVal, or EqOpt.
package checked

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/exp/constraints"

	"github.com/hnimtadd/checked/intmath"
	"github.com/hnimtadd/checked/option"
	"github.com/hnimtadd/checked/utils"
)

// Checked carries either an integer or the fact that an earlier checked
// operation failed. The zero value is absent. Checked values are never
// mutated by arithmetic; every operation returns a new one.
type Checked[T constraints.Integer] struct {
	val option.Option[T]
}

// Wrap returns a present Checked value holding v.
func Wrap[T constraints.Integer](v T) Checked[T] {
	return Checked[T]{val: option.Some(v)}
}

// Absent returns a Checked value in the failed state. Callers never need
// it to do arithmetic; it exists for composition and tests.
func Absent[T constraints.Integer]() Checked[T] {
	return Checked[T]{}
}

// Get exposes the underlying optional payload.
func (c Checked[T]) Get() option.Option[T] { return c.val }

// Set replaces the underlying optional payload. Intended for building
// new operations on top of Checked, not for general mutation.
func (c *Checked[T]) Set(o option.Option[T]) { c.val = o }

// Unwrap returns the payload and whether it is present.
func (c Checked[T]) Unwrap() (T, bool) { return c.val.Unwrap() }

// Present reports whether the value survived every operation so far.
func (c Checked[T]) Present() bool { return c.val.IsSome() }

// EqVal reports whether c is present and holds v.
func (c Checked[T]) EqVal(v T) bool { return c.val == option.Some(v) }

// EqOpt reports whether c's optional form equals o.
func (c Checked[T]) EqOpt(o option.Option[T]) bool { return c.val == o }

func (c Checked[T]) String() string { return c.val.String() }

// Hash returns a stable hash of the optional state, so Checked values
// can key hash-based containers.
func (c Checked[T]) Hash() uint64 {
	v, ok := c.val.Unwrap()
	hashed, err := hashstructure.Hash(struct {
		Value   T
		Present bool
	}{v, ok}, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash checked value: %v", err))
	return hashed
}

// apply runs op over two checked operands. Absence on either side
// short-circuits without attempting the operation.
func apply[T constraints.Integer](name string, l, r Checked[T], op func(a, b T) (T, bool)) Checked[T] {
	lv, ok := l.Unwrap()
	if !ok {
		return Absent[T]()
	}
	rv, ok := r.Unwrap()
	if !ok {
		return Absent[T]()
	}
	res, ok := op(lv, rv)
	if !ok {
		traceFail(name, lv, rv)
		return Absent[T]()
	}
	return Wrap(res)
}

// Add returns c+rhs, absent on overflow or when either side is absent.
func (c Checked[T]) Add(rhs Checked[T]) Checked[T] {
	return apply("add", c, rhs, intmath.Add[T])
}

// AddVal returns c+v, absent on overflow or when c is absent.
func (c Checked[T]) AddVal(v T) Checked[T] {
	return apply("add", c, Wrap(v), intmath.Add[T])
}

// Sub returns c-rhs, absent on underflow/overflow or when either side is
// absent.
func (c Checked[T]) Sub(rhs Checked[T]) Checked[T] {
	return apply("sub", c, rhs, intmath.Sub[T])
}

// SubVal returns c-v, absent on underflow/overflow or when c is absent.
func (c Checked[T]) SubVal(v T) Checked[T] {
	return apply("sub", c, Wrap(v), intmath.Sub[T])
}

// Mul returns c*rhs, absent on overflow or when either side is absent.
func (c Checked[T]) Mul(rhs Checked[T]) Checked[T] {
	return apply("mul", c, rhs, intmath.Mul[T])
}

// MulVal returns c*v, absent on overflow or when c is absent.
func (c Checked[T]) MulVal(v T) Checked[T] {
	return apply("mul", c, Wrap(v), intmath.Mul[T])
}

// Div returns c/rhs, absent on a zero divisor, on an unrepresentable
// quotient, or when either side is absent.
func (c Checked[T]) Div(rhs Checked[T]) Checked[T] {
	return apply("div", c, rhs, intmath.Div[T])
}

// DivVal returns c/v, absent on a zero divisor, on an unrepresentable
// quotient, or when c is absent.
func (c Checked[T]) DivVal(v T) Checked[T] {
	return apply("div", c, Wrap(v), intmath.Div[T])
}
