// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

// SetOptimize enables or disables the fast digit generator and returns
// the previous setting.
func SetOptimize(b bool) bool {
	old := optimize
	optimize = b
	return old
}

// Digits returns the digits and decimal exponent chosen for the finite,
// nonzero float64 v, and whether the fast generator was sure of them.
func Digits(v float64) (digits string, exp int, sure bool) {
	b, flt := floatBits(v)
	b &^= flt.signMask()
	var d shortDecimal
	sure = grisu(&d, b, flt)
	return string(d.d[:d.nd]), d.exp, sure
}

// ExactDigits is Digits computed with multiprecision arithmetic only.
func ExactDigits(v float64) (digits string, exp int) {
	b, flt := floatBits(v)
	b &^= flt.signMask()
	var d shortDecimal
	exactShortest(&d, b, flt)
	return string(d.d[:d.nd]), d.exp
}
