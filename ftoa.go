// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ftoa converts IEEE-754 floating-point numbers to the shortest
// decimal text that reads back as the same number.
//
// Algorithm:
//   1) split the value into a 64-bit mantissa and a binary exponent,
//      along with the midpoints to its neighbours
//   2) scale all three by a cached power of ten
//   3) generate the digits of the upper midpoint until the lower one is
//      reached, then round the last digit toward the value (Grisu)
//   4) when the rounding errors of 2) leave the answer unsure, redo 3)
//      with multiprecision arithmetic
//   5) print the digits as ddd, ddd.ddd, 0.000ddd or d.ddde±dd
//
// float32 values are formatted with their own precision: the output is
// the shortest text that reads back as the same float32.
package ftoa

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// MaxBufferSize is a destination length sufficient for any value in
// base 10, sign and exponent included.
const MaxBufferSize = 60

var optimize = true // set to false to force the multiprecision path for testing

// Write formats v in the given base into dst and returns the number of
// bytes written. Only base 10 is implemented; other bases return an error
// wrapping ErrUnsupportedBase, or ErrInvalidBase outside [2, 36].
//
// Write never writes past len(dst). If the text does not fit, the leading
// len(dst) bytes are written and a *CapacityError is returned; an empty
// dst receives nothing. A dst of MaxBufferSize bytes is always enough.
func Write[F constraints.Float](dst []byte, v F, base int) (int, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	c := cursor{buf: dst}
	writeFloat(&c, v, base)
	return c.written(), c.err()
}

// WriteFloat32 is Write for float32 values.
func WriteFloat32(dst []byte, v float32, base int) (int, error) {
	return Write(dst, v, base)
}

// WriteFloat64 is Write for float64 values.
func WriteFloat64(dst []byte, v float64, base int) (int, error) {
	return Write(dst, v, base)
}

// Append appends the text form of v, as generated by Write, to dst and
// returns the extended buffer.
func Append[F constraints.Float](dst []byte, v F, base int) ([]byte, error) {
	if err := checkBase(base); err != nil {
		return dst, err
	}
	dst = slices.Grow(dst, MaxBufferSize)
	n := len(dst)
	c := cursor{buf: dst[n : n+MaxBufferSize]}
	writeFloat(&c, v, base)
	return dst[:n+c.written()], c.err()
}

// Bytes returns the text form of v in a newly allocated slice.
func Bytes[F constraints.Float](v F, base int) ([]byte, error) {
	buf := make([]byte, MaxBufferSize)
	n, err := Write(buf, v, base)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Format returns the text form of v. The text is plain ASCII.
func Format[F constraints.Float](v F, base int) (string, error) {
	var buf [MaxBufferSize]byte
	n, err := Write(buf[:], v, base)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// FormatFloat32 is Format for float32 values.
func FormatFloat32(v float32, base int) (string, error) {
	return Format(v, base)
}

// FormatFloat64 is Format for float64 values.
func FormatFloat64(v float64, base int) (string, error) {
	return Format(v, base)
}

func writeFloat[F constraints.Float](c *cursor, v F, base int) {
	b, flt := floatBits(v)
	// -0 and NaN compare false and print without a sign.
	if v < 0 {
		c.writeByte('-')
	}
	if filterSpecial(c, b, flt) {
		return
	}
	var d shortDecimal
	shortest(&d, b, flt)
	emitDigits(c, &d, base)
}

// shortest stores in d the shortest decimal that reads back as the
// finite, nonzero value with bit pattern b.
func shortest(d *shortDecimal, b uint64, flt *floatInfo) {
	if optimize && grisu(d, b, flt) {
		return
	}
	exactShortest(d, b, flt)
}
