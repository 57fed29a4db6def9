// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

import (
	"math"
	"math/big"
	"testing"
)

// multiply32 is the four partial products form of Multiply.
func multiply32(a, b extFloat) extFloat {
	const lomask = 1<<32 - 1
	ahbl := (a.mant >> 32) * (b.mant & lomask)
	albh := (a.mant & lomask) * (b.mant >> 32)
	albl := (a.mant & lomask) * (b.mant & lomask)
	ahbh := (a.mant >> 32) * (b.mant >> 32)

	tmp := (ahbl & lomask) + (albh & lomask) + (albl >> 32)
	tmp += 1 << 31 // round
	return extFloat{
		mant: ahbh + (ahbl >> 32) + (albh >> 32) + (tmp >> 32),
		exp:  a.exp + b.exp + 64,
	}
}

func TestMultiplyPartialProducts(t *testing.T) {
	mants := []uint64{
		1 << 63, 1<<64 - 1, 0x8000000080000000, 0xffffffff00000000,
		0x9c40000000000000, 0xcccccccccccccccd, 0xfa8fd5a0081c0288,
		0x80000000ffffffff, 0xdeadbeefcafebabe, 0x7fffffffffffffff,
	}
	for _, p := range powersOfTen {
		mants = append(mants, p.mant)
	}
	for _, a := range mants {
		for _, b := range mants {
			f := extFloat{a, -10}
			f.Multiply(extFloat{b, 3})
			want := multiply32(extFloat{a, -10}, extFloat{b, 3})
			if f != want {
				t.Errorf("%#x*%#x = %#x (exp %d), want %#x (exp %d)",
					a, b, f.mant, f.exp, want.mant, want.exp)
			}
		}
	}
}

func TestPowersOfTen(t *testing.T) {
	for i, p := range powersOfTen {
		k := firstPowerOfTen + i*stepPowerOfTen
		if p.mant>>63 != 1 {
			t.Errorf("10^%d: mantissa %#x is not normalized", k, p.mant)
			continue
		}
		// The mantissa must be 10^k * 2^-exp rounded to nearest.
		exact := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(k))), nil))
		if k < 0 {
			exact.Inv(exact)
		}
		scale := new(big.Int).Lsh(big.NewInt(1), uint(abs(p.exp)))
		if p.exp < 0 {
			exact.Mul(exact, new(big.Rat).SetInt(scale))
		} else {
			exact.Quo(exact, new(big.Rat).SetInt(scale))
		}
		diff := new(big.Rat).Sub(exact, new(big.Rat).SetInt(new(big.Int).SetUint64(p.mant)))
		if diff.Abs(diff).Cmp(big.NewRat(1, 2)) > 0 {
			t.Errorf("10^%d: mantissa %#x is off by %s", k, p.mant, diff.FloatString(3))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestCachedPowerWindow(t *testing.T) {
	// Normalized boundaries of every float64 and float32 have binary
	// exponents within these ranges.
	for _, exp := range []struct{ lo, hi int }{{-1137, 960}, {-213, 64}} {
		for e := exp.lo; e <= exp.hi; e++ {
			p, k := cachedPower(e)
			got := e + p.exp + 64
			if got < expMin || got > expMax {
				t.Errorf("cachedPower(%d) = 10^%d, scaled exponent %d", e, k, got)
			}
		}
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		v    float64
		mant uint64
		exp  int
	}{
		{1, 1 << 52, -52},
		{0.5, 1 << 52, -53},
		{3, 3 << 51, -51},
		{math.MaxFloat64, 1<<53 - 1, 971},
		{math.SmallestNonzeroFloat64, 1, -1074},
		{0x1p-1022, 1 << 52, -1074},
	}
	for _, tt := range tests {
		f := decompose(math.Float64bits(tt.v), &float64info)
		if f.mant != tt.mant || f.exp != tt.exp {
			t.Errorf("decompose(%v) = %d*2^%d, want %d*2^%d", tt.v, f.mant, f.exp, tt.mant, tt.exp)
		}
		if got := math.Ldexp(float64(f.mant), f.exp); got != tt.v {
			t.Errorf("decompose(%v) reads back as %v", tt.v, got)
		}
	}

	f := decompose(uint64(math.Float32bits(1.5)), &float32info)
	if f.mant != 3<<22 || f.exp != -23 {
		t.Errorf("decompose(float32(1.5)) = %d*2^%d", f.mant, f.exp)
	}
}

// ratOf returns f as an exact rational.
func ratOf(f extFloat) *big.Rat {
	r := new(big.Rat).SetInt(new(big.Int).SetUint64(f.mant))
	s := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(abs(f.exp))))
	if f.exp < 0 {
		return r.Quo(r, s)
	}
	return r.Mul(r, s)
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		v          float64
		prev, next float64
	}{
		{1, math.Nextafter(1, 0), math.Nextafter(1, 2)},
		{1.5, math.Nextafter(1.5, 0), math.Nextafter(1.5, 2)},
		{0x1p-1022, math.Nextafter(0x1p-1022, 0), math.Nextafter(0x1p-1022, 1)},
		{0x1p-1021, math.Nextafter(0x1p-1021, 0), math.Nextafter(0x1p-1021, 1)},
		{math.SmallestNonzeroFloat64, 0, 2 * math.SmallestNonzeroFloat64},
		{1e300, math.Nextafter(1e300, 0), math.Nextafter(1e300, math.Inf(1))},
		{math.MaxFloat64, math.Nextafter(math.MaxFloat64, 0), 0},
	}
	for _, tt := range tests {
		b := math.Float64bits(tt.v)
		w := decompose(b, &float64info)
		lower, upper := w.boundaries(b, &float64info)
		if upper.mant>>63 != 1 {
			t.Errorf("%v: upper boundary %#x not normalized", tt.v, upper.mant)
		}
		if lower.exp != upper.exp {
			t.Errorf("%v: boundaries have exponents %d and %d", tt.v, lower.exp, upper.exp)
		}
		w.Normalize()
		if w.exp != upper.exp {
			t.Errorf("%v: normalized exponent %d, upper exponent %d", tt.v, w.exp, upper.exp)
		}

		v := new(big.Rat).SetFloat64(tt.v)
		half := big.NewRat(1, 2)
		wantLow := new(big.Rat).Add(v, new(big.Rat).SetFloat64(tt.prev))
		wantLow.Mul(wantLow, half)
		if got := ratOf(lower); got.Cmp(wantLow) != 0 {
			t.Errorf("%v: lower boundary %s, want %s", tt.v, got.FloatString(20), wantLow.FloatString(20))
		}
		if tt.next == 0 {
			continue
		}
		wantHigh := new(big.Rat).Add(v, new(big.Rat).SetFloat64(tt.next))
		wantHigh.Mul(wantHigh, half)
		if got := ratOf(upper); got.Cmp(wantHigh) != 0 {
			t.Errorf("%v: upper boundary %s, want %s", tt.v, got.FloatString(20), wantHigh.FloatString(20))
		}
	}
}

func TestGenerateDigitsInterval(t *testing.T) {
	// Whatever the certainty, the fast path never leaves the rounding
	// interval.
	values := []float64{1, 0.1, 1.5, 123.456, 1e23, 5e-324, math.MaxFloat64, 0x1p-1022}
	for _, v := range values {
		var d shortDecimal
		grisu(&d, math.Float64bits(v), &float64info)
		s := string(d.d[:d.nd]) + "e" + itoa(d.exp)
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			t.Fatalf("%v: bad digits %q", v, s)
		}
		f, _ := r.Float64()
		if f != v {
			t.Errorf("%v: digits %s read back as %v", v, s, f)
		}
	}
}

func itoa(i int) string {
	return big.NewInt(int64(i)).String()
}

func TestFilterSpecial(t *testing.T) {
	tests := []struct {
		b    uint64
		want string
		ok   bool
	}{
		{0, "0", true},
		{1 << 63, "0", true},
		{0x7ff0000000000000, "Infinity", true},
		{0xfff0000000000000, "Infinity", true},
		{0x7ff8000000000000, "NaN", true},
		{0xfff0000000000001, "NaN", true},
		{0x3ff0000000000000, "", false},
		{1, "", false},
	}
	for _, tt := range tests {
		var buf [8]byte
		c := cursor{buf: buf[:]}
		ok := filterSpecial(&c, tt.b, &float64info)
		if got := string(buf[:c.n]); ok != tt.ok || got != tt.want {
			t.Errorf("filterSpecial(%#x) = %q, %v, want %q, %v", tt.b, got, ok, tt.want, tt.ok)
		}
	}

	var buf [8]byte
	c := cursor{buf: buf[:]}
	if !filterSpecial(&c, 0x7f800000, &float32info) || string(buf[:c.n]) != "Infinity" {
		t.Errorf("float32 +Inf = %q", buf[:c.n])
	}
}

func TestEmitDigits(t *testing.T) {
	tests := []struct {
		digits string
		exp    int
		base   int
		want   string
	}{
		{"1", 0, 10, "1"},
		{"105", -1, 10, "10.5"},
		{"1", 7, 10, "10000000"},
		{"1", 8, 10, "1e+8"},
		{"12", 7, 10, "120000000"},
		{"1", -1, 10, "0.1"},
		{"1", -6, 10, "0.000001"},
		{"1", -7, 10, "1e-7"},
		{"123", -9, 10, "1.23e-7"},
		{"12345678", -10, 10, "0.0012345678"},
		{"25", 99, 10, "2.5e+100"},
		{"1", 100, 10, "1e+100"},
		{"1", 105, 10, "1e+105"},
		{"1", 110, 10, "1e+110"},
		{"5", -324, 10, "5e-324"},
		{"17976931348623157", 292, 10, "1.7976931348623157e+308"},
		{"1", 8, 16, "1^+8"},
		{"1", 8, 14, "1e+8"},
	}
	for _, tt := range tests {
		var d shortDecimal
		d.nd = copy(d.d[:], tt.digits)
		d.exp = tt.exp
		var buf [MaxBufferSize]byte
		c := cursor{buf: buf[:]}
		emitDigits(&c, &d, tt.base)
		if got := string(buf[:c.n]); got != tt.want {
			t.Errorf("emitDigits(%se%d) = %q, want %q", tt.digits, tt.exp, got, tt.want)
		}
	}
}

func TestCursor(t *testing.T) {
	var buf [4]byte
	c := cursor{buf: buf[:3]}
	c.writeString("ab")
	c.write([]byte("cd"))
	c.writeByte('e')
	c.pad('0', 2)
	if c.n != 7 || c.written() != 3 || string(buf[:3]) != "abc" || buf[3] != 0 {
		t.Errorf("cursor = %q (n=%d), buf = %q", buf[:c.written()], c.n, buf)
	}
	err, ok := c.err().(*CapacityError)
	if !ok || err.Needed != 7 || err.Available != 3 {
		t.Errorf("err = %v", c.err())
	}
}
