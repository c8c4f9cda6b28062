package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromIntRoundTrips(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(0), FromInt(0).Int())
	assert.Equal(int64(42), FromInt(42).Int())
	assert.Equal(int64(-42), FromInt(-42).Int())
}

func TestZeroIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.False(FromInt(-5).Add(FromInt(5)).Neg)
	assert.False(New(0, true).Neg)
	assert.False(FromInt(-3).Negate().Sub(FromInt(3)).Neg)
}

func TestAddSubSignHandling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FromInt(7), FromInt(10).Add(FromInt(-3)))
	assert.Equal(FromInt(-7), FromInt(-10).Add(FromInt(3)))
	assert.Equal(FromInt(-13), FromInt(-10).Sub(FromInt(3)))
	assert.Equal(FromInt(13), FromInt(10).Sub(FromInt(-3)))
}

func TestMulPropagatesSign(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FromInt(6), FromInt(2).Mul(FromInt(3)))
	assert.Equal(FromInt(-6), FromInt(-2).Mul(FromInt(3)))
	assert.Equal(FromInt(-6), FromInt(2).Mul(FromInt(-3)))
	assert.Equal(FromInt(6), FromInt(-2).Mul(FromInt(-3)))
}

func TestMulKeepsFractionExactly(t *testing.T) {
	// 5 * 2.5 == 12.5, representable exactly in binary fixed point
	half := New(One/2, false)
	factor := FromInt(2).Add(half)
	got := FromInt(5).Mul(factor)
	assert.Equal(t, FromInt(12).Add(half), got)
}

func TestMulIdentity(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 480, -480, 1 << 20} {
		assert.Equal(t, FromInt(v), FromInt(v).Mul(FromInt(1)))
	}
}

func TestCmp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, FromInt(-1).Cmp(FromInt(1)))
	assert.Equal(1, FromInt(1).Cmp(FromInt(-1)))
	assert.Equal(0, FromInt(5).Cmp(FromInt(5)))
	assert.Equal(-1, FromInt(-5).Cmp(FromInt(-1)))
	assert.True(FromInt(3).Less(FromInt(4)))
}

func TestRoundToMultiple(t *testing.T) {
	cases := []struct {
		in   int64
		step uint64
		want int64
	}{
		{0, 10, 0},
		{14, 10, 10},
		{16, 10, 20},
		{15, 10, 20}, // exact half goes to the later line
		{-14, 10, -10},
		{-16, 10, -20},
		{-15, 10, -10}, // later means toward positive infinity
		{480, 480, 480},
	}
	for _, c := range cases {
		got := FromInt(c.in).RoundToMultiple(c.step)
		assert.Equal(t, FromInt(c.want), got, "round %v to %v", c.in, c.step)
	}
}

func TestRoundToMultipleHalfTickGrid(t *testing.T) {
	// 7.5 snaps to 8 on a grid of 1
	half := New(One/2, false)
	in := FromInt(7).Add(half)
	assert.Equal(t, FromInt(8), in.RoundToMultiple(1))
}

func TestRoundInt(t *testing.T) {
	assert := assert.New(t)
	half := New(One/2, false)
	assert.Equal(int64(8), FromInt(7).Add(half).RoundInt())
	assert.Equal(int64(-8), FromInt(-7).Sub(half).RoundInt())
	assert.Equal(int64(7), FromInt(7).Int())
}
