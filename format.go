// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

// A cursor writes into a fixed slice. Writes past its end are dropped but
// counted, so n is the length the whole output needs.
type cursor struct {
	buf []byte
	n   int
}

func (c *cursor) writeByte(b byte) {
	if c.n < len(c.buf) {
		c.buf[c.n] = b
	}
	c.n++
}

func (c *cursor) write(p []byte) {
	if c.n < len(c.buf) {
		copy(c.buf[c.n:], p)
	}
	c.n += len(p)
}

func (c *cursor) writeString(s string) {
	if c.n < len(c.buf) {
		copy(c.buf[c.n:], s)
	}
	c.n += len(s)
}

// pad writes count copies of b.
func (c *cursor) pad(b byte, count int) {
	for ; count > 0; count-- {
		c.writeByte(b)
	}
}

// written returns the number of bytes actually stored.
func (c *cursor) written() int {
	return min(c.n, len(c.buf))
}

// err returns a *CapacityError if the output did not fit.
func (c *cursor) err() error {
	if c.n > len(c.buf) {
		return &CapacityError{Needed: c.n, Available: len(c.buf)}
	}
	return nil
}

// exponentChar returns the character introducing the exponent. From
// base 15 on 'e' is a digit, so '^' is used instead.
func exponentChar(base int) byte {
	if base >= 15 {
		return '^'
	}
	return 'e'
}

// filterSpecial writes zero, NaN and the infinities, which have no
// digits to generate, and reports whether b was one of them. The sign is
// never written here: zero prints as "0" whatever its sign bit.
func filterSpecial(c *cursor, b uint64, flt *floatInfo) bool {
	if b&^flt.signMask() == 0 {
		c.writeByte('0')
		return true
	}
	if b&flt.expMask() != flt.expMask() {
		return false
	}
	if b&flt.fracMask() != 0 {
		c.writeString("NaN")
	} else {
		c.writeString("Infinity")
	}
	return true
}

// emitDigits lays out d = digits * 10^exp as a plain integer, a plain
// decimal or in scientific notation, whichever is the most compact for
// the magnitude of d.
func emitDigits(c *cursor, d *shortDecimal, base int) {
	nd, k := d.nd, d.exp
	exp := k + nd - 1
	aexp := exp
	if aexp < 0 {
		aexp = -aexp
	}

	switch {
	case k >= 0 && aexp < nd+7:
		// ddddd000
		c.write(d.d[:nd])
		c.pad('0', k)
		return

	case k < 0 && (k > -7 || aexp < 4):
		offset := nd + k
		if offset <= 0 {
			// 0.000ddd
			c.writeString("0.")
			c.pad('0', -offset)
			c.write(d.d[:nd])
		} else {
			// ddd.ddd
			c.write(d.d[:offset])
			c.writeByte('.')
			c.write(d.d[offset:nd])
		}
		return
	}

	// d.ddddde±ddd
	nd = min(nd, maxDigits)
	c.writeByte(d.d[0])
	if nd > 1 {
		c.writeByte('.')
		c.write(d.d[1:nd])
	}
	c.writeByte(exponentChar(base))
	if exp < 0 {
		c.writeByte('-')
	} else {
		c.writeByte('+')
	}

	// d, dd or ddd, with a zero tens digit only after a hundreds digit.
	cent := 0
	if aexp > 99 {
		cent = aexp / 100
		c.writeByte(byte(cent) + '0')
		aexp -= cent * 100
	}
	if aexp > 9 {
		dec := aexp / 10
		c.writeByte(byte(dec) + '0')
		aexp -= dec * 10
	} else if cent != 0 {
		c.writeByte('0')
	}
	c.writeByte(byte(aexp) + '0')
}
