package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnimtadd/checked/option"
)

// Mirrors the uint8 walkthrough from the package documentation.
func TestUint8Scenario(t *testing.T) {
	a, b := Wrap2(uint8(10), uint8(20))

	assert.True(t, a.Add(b).EqVal(30), "10 + 20 should be Some(30)")
	assert.True(t, b.Mul(b).EqOpt(option.None[uint8]()), "20 * 20 overflows uint8")
	assert.True(t, b.DivVal(0).EqOpt(option.None[uint8]()), "division by zero should be absent")
	assert.True(t, a.SubVal(20).EqOpt(option.None[uint8]()), "10 - 20 underflows unsigned")
	assert.True(t, a.Sub(b).AddVal(1).EqOpt(option.None[uint8]()),
		"the failed subtraction should absorb the later add")
}

func TestUnsignedUnderflowDoesNotPanic(t *testing.T) {
	c := Wrap(uint(20))
	assert.NotPanics(t, func() {
		res := c.SubVal(100)
		assert.False(t, res.Present())
	})
}

func TestRawRightOperands(t *testing.T) {
	c := Wrap(int16(100))

	assert.True(t, c.AddVal(1).EqVal(101))
	assert.True(t, c.SubVal(1).EqVal(99))
	assert.True(t, c.MulVal(3).EqVal(300))
	assert.True(t, c.DivVal(4).EqVal(25))
	assert.True(t, c.MulVal(math.MaxInt16).EqOpt(option.None[int16]()))
}

func TestAbsorption(t *testing.T) {
	absent := Wrap(uint8(0)).SubVal(1)
	assert.False(t, absent.Present())

	// Any further operation, with present or absent operands, must stay
	// absent regardless of chain length.
	chains := []Checked[uint8]{
		absent.Add(Wrap(uint8(1))),
		absent.Sub(Wrap(uint8(1))),
		absent.Mul(Wrap(uint8(2))),
		absent.Div(Wrap(uint8(2))),
		absent.AddVal(1),
		absent.Add(absent),
		absent.AddVal(1).MulVal(2).SubVal(3).DivVal(4),
		Wrap(uint8(1)).Add(absent),
	}
	for i, c := range chains {
		assert.True(t, c.EqOpt(option.None[uint8]()), "chain %d should stay absent", i)
	}
}

func TestAbsentShortCircuitsBeforeComputing(t *testing.T) {
	// Dividing by zero would fail on its own; with an absent left side
	// the operation is never attempted and the result is plain absence.
	res := Absent[uint8]().DivVal(0)
	assert.True(t, res.EqOpt(option.None[uint8]()))
}

func TestEquality(t *testing.T) {
	c := Wrap(int32(7))

	assert.True(t, c.EqVal(7))
	assert.False(t, c.EqVal(8))
	assert.True(t, c.EqOpt(option.Some(int32(7))))
	assert.False(t, c.EqOpt(option.None[int32]()))

	n := Absent[int32]()
	assert.True(t, n.EqOpt(option.None[int32]()))
	assert.False(t, n.EqVal(0), "absent should not equal any raw value")

	// Checked values are plain comparable structs.
	assert.Equal(t, Wrap(int32(7)), c)
	assert.Equal(t, Absent[int32](), n)
}

func TestZeroValueIsAbsent(t *testing.T) {
	var c Checked[uint8]
	assert.False(t, c.Present())
	assert.True(t, c.EqOpt(option.None[uint8]()))
}

func TestGetAndSet(t *testing.T) {
	c := Wrap(uint8(5))
	assert.Equal(t, option.Some(uint8(5)), c.Get())

	c.Set(option.None[uint8]())
	assert.False(t, c.Present())

	c.Set(option.Some(uint8(9)))
	v, ok := c.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, uint8(9), v)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(30)", Wrap(uint8(30)).String())
	assert.Equal(t, "None", Absent[uint8]().String())
}

func TestHash(t *testing.T) {
	assert.Equal(t, Wrap(uint8(5)).Hash(), Wrap(uint8(5)).Hash())
	assert.NotEqual(t, Wrap(uint8(5)).Hash(), Wrap(uint8(6)).Hash())
	assert.NotEqual(t, Wrap(uint8(0)).Hash(), Absent[uint8]().Hash(),
		"present zero and absent should hash differently")
}

func TestSignedOperations(t *testing.T) {
	c := Wrap(int8(math.MinInt8))

	assert.True(t, c.DivVal(-1).EqOpt(option.None[int8]()), "MinInt8 / -1 is unrepresentable")
	assert.True(t, c.MulVal(-1).EqOpt(option.None[int8]()), "MinInt8 * -1 is unrepresentable")
	assert.True(t, c.DivVal(2).EqVal(-64))
	assert.True(t, c.AddVal(-1).EqOpt(option.None[int8]()))
	assert.True(t, Wrap(int8(math.MaxInt8)).AddVal(1).EqOpt(option.None[int8]()))
}
