// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

// maxDigits is the largest number of significant digits the digit
// generators produce; 17 are enough to round-trip a float64.
const maxDigits = 18

// A shortDecimal holds the digits d[:nd] of the decimal number
// d[:nd] * 10^exp.
type shortDecimal struct {
	d   [maxDigits]byte
	nd  int
	exp int
}

var uint64pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// grisu stores in d the shortest decimal in the rounding interval of the
// finite, nonzero value with bit pattern b. It returns false whenever the
// result is unsure; d then still holds a decimal that converts back to
// the same value, but maybe not the shortest or nearest one.
func grisu(d *shortDecimal, b uint64, flt *floatInfo) bool {
	w := decompose(b, flt)
	lower, upper := w.boundaries(b, flt)
	w.Normalize()

	pow, k := cachedPower(upper.exp)
	w.Multiply(pow)
	upper.Multiply(pow)
	lower.Multiply(pow)

	// Narrow the interval by the error of the multiplications, so
	// that every digit string found below is surely inside it.
	lower.mant++
	upper.mant--

	d.nd = 0
	d.exp = -k
	return generateDigits(d, w, upper, lower)
}

// generateDigits writes into d the shortest truncation of upper which
// is not below lower, then moves its last digit as close to w as the
// interval allows. w, upper and lower share a binary exponent in
// [expMin, expMax].
//
// Every scaled value is only known up to one unit of its last bit. The
// result is reported unsure when that error could change the number of
// digits or the last digit.
func generateDigits(d *shortDecimal, w, upper, lower extFloat) bool {
	wfrac := upper.mant - w.mant
	delta := upper.mant - lower.mant

	shift := uint(-upper.exp)
	one := uint64(1) << shift
	integer := upper.mant >> shift
	fraction := upper.mant & (one - 1)

	// nearMiss records whether the previous digit position missed the
	// interval by no more than the error of the computation.
	nearMiss := false

	// The integral part has at most 10 digits since shift >= 32.
	kappa := 10
	for i := 9; i >= 0; i-- {
		pow := uint64pow10[i]
		digit := integer / pow
		if digit != 0 || d.nd != 0 {
			d.d[d.nd] = byte(digit) + '0'
			d.nd++
		}
		integer -= digit * pow
		kappa--

		rest := integer<<shift + fraction
		if rest <= delta {
			d.exp += kappa
			ulp := pow << shift
			r := roundDigit(d, delta, rest, ulp, wfrac)
			return !nearMiss && certain(delta, r, ulp, wfrac, 1, r != rest)
		}
		if pow>>(64-shift) != 0 {
			// pow<<shift is above any 64-bit upper boundary.
			nearMiss = rest-delta <= slop
		} else {
			nearMiss = isClose(rest, delta, pow<<shift, 1)
		}
	}

	// Digits of the fractional part. fraction is below 2^60, so
	// 10*fraction cannot overflow; unit is the error carried by
	// fraction and delta once scaled.
	unit := uint64(1)
	for {
		fraction *= 10
		delta *= 10
		unit *= 10
		kappa--

		digit := fraction >> shift
		if digit != 0 || d.nd != 0 {
			d.d[d.nd] = byte(digit) + '0'
			d.nd++
		}
		fraction &= one - 1
		if fraction < delta {
			d.exp += kappa
			target := wfrac * unit
			r := roundDigit(d, delta, fraction, one, target)
			return !nearMiss && certain(delta, r, one, target, unit, r != fraction)
		}
		nearMiss = isClose(fraction, delta, one, unit)
	}
}

// roundDigit decrements the last digit of d while that brings it closer
// to the value, or as close, without leaving the interval. rest is the
// distance from the digits to the upper boundary, wfrac the distance from
// the value to it, and ulp the worth of the last digit. It returns the
// final rest.
func roundDigit(d *shortDecimal, delta, rest, ulp, wfrac uint64) uint64 {
	for rest < wfrac && delta-rest >= ulp &&
		(rest+ulp < wfrac || wfrac-rest >= rest+ulp-wfrac) {
		d.d[d.nd-1]--
		rest += ulp
	}
	return rest
}

// slop bounds, in units, the difference between a scaled quantity and
// its exact value: each of w, upper and lower is within one unit, so
// distances between them are within two, and the interval was narrowed
// by one unit at each end.
const slop = 4

// isClose reports whether a digit position whose truncation missed the
// interval by rest-delta may still hold a decimal inside the exact
// interval, either that truncation or the next multiple of ulp above it.
func isClose(rest, delta, ulp, unit uint64) bool {
	return rest-delta <= slop*unit || ulp-rest <= slop*unit
}

// certain reports whether the last digit chosen by roundDigit would stay
// the same for every distance within the computation error. moved tells
// whether roundDigit decremented the digit at least once.
func certain(delta, rest, ulp, wfrac, unit uint64, moved bool) bool {
	err := slop * unit
	if ulp <= 2*err {
		// The error reaches the last digit itself.
		return false
	}
	// A decimal just above upper may be nearer than the truncation.
	if !moved && ulp-rest <= err {
		return false
	}
	// One more decrement with a larger distance to the value.
	if far := wfrac + err; rest < far && delta+err-rest >= ulp &&
		(rest+ulp < far || far-rest >= rest+ulp-far) {
		return false
	}
	// The last decrement with a smaller distance to the value.
	if moved {
		prev := rest - ulp
		near := uint64(0)
		if wfrac > err {
			near = wfrac - err
		}
		if !(prev < near && (prev+ulp < near || near-prev >= prev+ulp-near)) {
			return false
		}
	}
	return true
}
