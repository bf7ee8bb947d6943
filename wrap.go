package checked

import "golang.org/x/exp/constraints"

// The WrapN helpers rebind a group of raw bindings in one statement.
// Inside any nested scope,
//
//	a, b := checked.Wrap2(a, b)
//
// shadows the raw a and b with their checked forms for the rest of the
// scope. Wrapping zero names is simply not calling a helper.

// Wrap2 wraps two values of the same type.
func Wrap2[T constraints.Integer](a, b T) (Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b)
}

// Wrap3 wraps three values of the same type.
func Wrap3[T constraints.Integer](a, b, c T) (Checked[T], Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b), Wrap(c)
}

// Wrap4 wraps four values of the same type.
func Wrap4[T constraints.Integer](a, b, c, d T) (Checked[T], Checked[T], Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b), Wrap(c), Wrap(d)
}

// WrapSlice wraps every value in vs. An empty or nil slice returns nil.
func WrapSlice[T constraints.Integer](vs []T) []Checked[T] {
	if len(vs) == 0 {
		return nil
	}
	out := make([]Checked[T], len(vs))
	for i, v := range vs {
		out[i] = Wrap(v)
	}
	return out
}
