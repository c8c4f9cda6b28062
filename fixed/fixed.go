package fixed

import "math/bits"

// FracBits is the number of binary fractional bits carried by Num.
const FracBits = 32

// One is the scaled representation of the integer 1.
const One = uint64(1) << FracBits

// Num is a signed fixed-point number: an unsigned magnitude scaled by 2^32
// plus an explicit sign bit. All arithmetic is exact within the fractional
// resolution, so identical inputs always produce bit-identical results.
type Num struct {
	Mag uint64
	Neg bool
}

// New builds a Num from a raw scaled magnitude and sign. Zero is always
// normalized to non-negative.
func New(mag uint64, neg bool) Num {
	if mag == 0 {
		neg = false
	}
	return Num{Mag: mag, Neg: neg}
}

// FromInt converts a signed integer (e.g. a tick count) to a Num.
func FromInt(v int64) Num {
	if v < 0 {
		return New(uint64(-v)<<FracBits, true)
	}
	return New(uint64(v)<<FracBits, false)
}

// Int truncates toward zero and returns the integer part.
func (n Num) Int() int64 {
	v := int64(n.Mag >> FracBits)
	if n.Neg {
		return -v
	}
	return v
}

// RoundInt rounds to the nearest integer, half away from zero.
func (n Num) RoundInt() int64 {
	v := int64((n.Mag + One/2) >> FracBits)
	if n.Neg {
		return -v
	}
	return v
}

func (n Num) IsZero() bool {
	return n.Mag == 0
}

// Negate flips the sign. Zero stays non-negative.
func (n Num) Negate() Num {
	return New(n.Mag, !n.Neg)
}

// Add returns n+m with signed-magnitude sign handling.
func (n Num) Add(m Num) Num {
	if n.Neg == m.Neg {
		return New(n.Mag+m.Mag, n.Neg)
	}
	if n.Mag >= m.Mag {
		return New(n.Mag-m.Mag, n.Neg)
	}
	return New(m.Mag-n.Mag, m.Neg)
}

// Sub returns n-m.
func (n Num) Sub(m Num) Num {
	return n.Add(m.Negate())
}

// Mul returns n*m. The full 128-bit product is kept before rescaling so no
// precision is lost beyond the fixed fractional resolution. A negative times
// a negative is positive, as usual.
func (n Num) Mul(m Num) Num {
	hi, lo := bits.Mul64(n.Mag, m.Mag)
	mag := hi<<(64-FracBits) | lo>>FracBits
	return New(mag, n.Neg != m.Neg)
}

// DivUint divides by an unsigned integer, truncating toward zero at the
// fractional resolution.
func (n Num) DivUint(d uint64) Num {
	return New(n.Mag/d, n.Neg)
}

// MulUint multiplies by an unsigned integer.
func (n Num) MulUint(d uint64) Num {
	return New(n.Mag*d, n.Neg)
}

// Cmp returns -1, 0 or 1 as n is less than, equal to, or greater than m.
func (n Num) Cmp(m Num) int {
	if n.Neg != m.Neg {
		if n.Neg {
			return -1
		}
		return 1
	}
	switch {
	case n.Mag == m.Mag:
		return 0
	case n.Mag < m.Mag:
		if n.Neg {
			return 1
		}
		return -1
	default:
		if n.Neg {
			return -1
		}
		return 1
	}
}

func (n Num) Less(m Num) bool {
	return n.Cmp(m) < 0
}

// RoundToMultiple snaps n to the nearest multiple of step (an integer number
// of ticks). Exact halves round toward the later grid line, i.e. toward
// positive infinity, so quantization is deterministic.
func (n Num) RoundToMultiple(step uint64) Num {
	s := step << FracBits
	if s == 0 {
		return n
	}
	r := n.Mag % s
	if r == 0 {
		return n
	}
	if !n.Neg {
		if r*2 >= s {
			return New(n.Mag+(s-r), false)
		}
		return New(n.Mag-r, false)
	}
	// Later means a smaller magnitude on the negative side.
	if r*2 <= s {
		return New(n.Mag-r, true)
	}
	return New(n.Mag+(s-r), true)
}
