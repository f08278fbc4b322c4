// Copyright (c) 2023, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fix32 provides the signed Q16.16 fixed-point arithmetic used by
the izchip datapath: 32-bit registers with 16 fractional bits, 64-bit
intermediates, and saturation instead of wraparound on overflow.
All rounding is floor (arithmetic shift), matching the shift behavior
of the silicon.
*/
package fix32

import "math"

// Fix is a signed Q16.16 fixed-point value: 1 sign + 15 integer + 16
// fractional bits, covering [-32768, 32768) at a resolution of 2^-16.
type Fix int32

const (
	// Shift is the number of fractional bits.
	Shift = 16

	// One is the fixed-point representation of 1.
	One Fix = 1 << Shift

	// Max is the largest representable value (just under +32768).
	Max Fix = math.MaxInt32

	// Min is the most negative representable value (-32768).
	Min Fix = math.MinInt32
)

// sat clamps a 64-bit intermediate back into the 32-bit register range.
func sat(v int64) Fix {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Fix(v)
}

// FromInt returns the fixed-point representation of an integer,
// saturating if it is outside the representable range.
func FromInt(i int) Fix {
	return sat(int64(i) << Shift)
}

// FromFloat32 returns the fixed-point quantization of a float, rounding
// toward negative infinity and saturating out-of-range values.
func FromFloat32(f float32) Fix {
	return sat(int64(math.Floor(float64(f) * float64(One))))
}

// Float32 returns the value as a float32, for display and logging.
func (x Fix) Float32() float32 {
	return float32(x) / float32(One)
}

// Int returns the integer part, rounding toward negative infinity.
func (x Fix) Int() int {
	return int(x >> Shift)
}

// Add returns x + y with saturation.
func (x Fix) Add(y Fix) Fix {
	return sat(int64(x) + int64(y))
}

// Sub returns x - y with saturation.
func (x Fix) Sub(y Fix) Fix {
	return sat(int64(x) - int64(y))
}

// Mul returns the Q16.16 product x * y, floored and saturated.
func (x Fix) Mul(y Fix) Fix {
	return sat((int64(x) * int64(y)) >> Shift)
}

// MulFrac8 returns x scaled by an unsigned Q0.8 fraction byte (f / 256),
// floored and saturated.  The recovery config bytes a and b are applied
// through this path.
func (x Fix) MulFrac8(f uint8) Fix {
	return sat((int64(x) * int64(f)) >> 8)
}

// MulInt returns x * n for an integer factor n, with saturation.
func (x Fix) MulInt(n int) Fix {
	return sat(int64(x) * int64(n))
}
