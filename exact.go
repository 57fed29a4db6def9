// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

import (
	"math/big"
	"math/bits"
)

var bigTen = big.NewInt(10)

// exactShortest stores in d the shortest decimal in the rounding interval
// of the finite, nonzero value with bit pattern b, using multiprecision
// arithmetic. Among the decimals of that length it picks the one nearest
// to the value, the smaller one on a tie.
func exactShortest(d *shortDecimal, b uint64, flt *floatInfo) {
	f := decompose(b, flt)

	// Scaled by 4, the value and both boundaries are integers times 2^e2.
	x := f.mant << 2
	hi := x + 2
	lo := x - 2
	if f.mant == flt.hiddenBit() && b&flt.expMask() > 1<<flt.mantbits {
		lo = x - 1
	}
	e2 := f.exp - 2
	// Round-to-even maps the boundaries back to the value only if its
	// mantissa is even.
	inclusive := f.mant&1 == 0

	// Start with a power of ten above hi*2^e2 and walk down until the
	// interval holds a multiple of it.
	q := int(float64(bits.Len64(hi)+e2)*oneLog10) + 1
	var c *big.Int
	for c == nil {
		c = nearestMultiple(x, lo, hi, e2, q, inclusive)
		if c == nil {
			q--
		}
	}

	s := c.Text(10)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
		q++
	}
	if len(s) > len(d.d) {
		panic("ftoa: internal error: too many digits in exactShortest")
	}
	d.nd = copy(d.d[:], s)
	d.exp = q
}

// nearestMultiple returns the integer c such that c*10^q lies in the
// interval [lo*2^e2, hi*2^e2] (open unless inclusive) and is nearest to
// x*2^e2, or nil if there is no such c.
func nearestMultiple(x, lo, hi uint64, e2, q int, inclusive bool) *big.Int {
	// Compare n*2^e2 with c*10^q as n*scale with c*unit.
	scale := big.NewInt(1)
	unit := big.NewInt(1)
	if e2 > 0 {
		scale.Lsh(scale, uint(e2))
	} else {
		unit.Lsh(unit, uint(-e2))
	}
	if q > 0 {
		unit.Mul(unit, pow10Big(q))
	} else if q < 0 {
		scale.Mul(scale, pow10Big(-q))
	}

	var rem big.Int
	low, r := quoRem(lo, scale, unit, &rem)
	if r.Sign() != 0 || !inclusive {
		low.Add(low, big.NewInt(1))
	}
	high, r := quoRem(hi, scale, unit, &rem)
	if r.Sign() == 0 && !inclusive {
		high.Sub(high, big.NewInt(1))
	}
	if low.Cmp(high) > 0 || high.Sign() <= 0 {
		return nil
	}

	c, r := quoRem(x, scale, unit, &rem)
	if r.Lsh(r, 1).Cmp(unit) > 0 {
		c.Add(c, big.NewInt(1))
	}
	switch {
	case c.Cmp(low) < 0:
		return low
	case c.Cmp(high) > 0:
		return high
	}
	return c
}

// quoRem returns the quotient and remainder of n*scale by unit. The
// remainder is stored in rem.
func quoRem(n uint64, scale, unit, rem *big.Int) (*big.Int, *big.Int) {
	num := new(big.Int).SetUint64(n)
	num.Mul(num, scale)
	quo := new(big.Int)
	quo.QuoRem(num, unit, rem)
	return quo, rem
}

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
