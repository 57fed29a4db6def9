// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftoa

import (
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// An extFloat represents an extended floating-point number, with more
// precision than a float64. It does not try to save bits: the
// number represented by the structure is mant*(2^exp).
type extFloat struct {
	mant uint64
	exp  int
}

// floatInfo describes the layout of an IEEE-754 binary format.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var float32info = floatInfo{23, 8, -127}
var float64info = floatInfo{52, 11, -1023}

// floatBits reinterprets v as its raw IEEE-754 bit pattern, widened to
// 64 bits, and returns the layout describing it. float32 values keep their
// binary32 encoding: they are never converted to float64 first.
func floatBits[F constraints.Float](v F) (uint64, *floatInfo) {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v))), &float32info
	}
	return math.Float64bits(float64(v)), &float64info
}

func (flt *floatInfo) signMask() uint64 { return uint64(1) << (flt.expbits + flt.mantbits) }

func (flt *floatInfo) hiddenBit() uint64 { return uint64(1) << flt.mantbits }

func (flt *floatInfo) fracMask() uint64 { return flt.hiddenBit() - 1 }

func (flt *floatInfo) expMask() uint64 {
	return (uint64(1)<<flt.expbits - 1) << flt.mantbits
}

// decompose splits the finite value with bit pattern b into an
// unnormalized extFloat. The implicit top bit is restored for normal
// numbers; subnormals take the minimum exponent without it.
func decompose(b uint64, flt *floatInfo) extFloat {
	shift := -flt.bias + int(flt.mantbits)
	f := extFloat{
		mant: b & flt.fracMask(),
		exp:  int(b>>flt.mantbits) & (1<<flt.expbits - 1),
	}
	if f.exp != 0 {
		f.mant |= flt.hiddenBit()
		f.exp -= shift
	} else {
		f.exp = 1 - shift
	}
	return f
}

// Normalize normalizes f so that the highest bit of the mantissa is
// set, and returns the number by which the mantissa was left-shifted.
func (f *extFloat) Normalize() uint {
	// bits.LeadingZeros64 would return 64
	if f.mant == 0 {
		return 0
	}
	shift := bits.LeadingZeros64(f.mant)
	f.mant <<= uint(shift)
	f.exp -= shift
	return uint(shift)
}

// boundaries returns the normalized midpoints between f and its two
// neighbouring floating-point values. f must be the unnormalized result
// of decompose. Both results share the exponent of the upper boundary,
// which is also the exponent of f once normalized.
func (f *extFloat) boundaries(b uint64, flt *floatInfo) (lower, upper extFloat) {
	upper = extFloat{mant: f.mant<<1 + 1, exp: f.exp - 1}
	for upper.mant&(flt.hiddenBit()<<1) == 0 {
		upper.mant <<= 1
		upper.exp--
	}
	ushift := 64 - int(flt.mantbits) - 2
	upper.mant <<= uint(ushift)
	upper.exp -= ushift

	// Just above a power of two the gap to the previous value is half the
	// gap to the next one, except at the smallest normal exponent where
	// the previous value is a subnormal with the same spacing.
	lshift := 1
	if f.mant == flt.hiddenBit() && b&flt.expMask() > 1<<flt.mantbits {
		lshift = 2
	}
	lower = extFloat{mant: f.mant<<uint(lshift) - 1, exp: f.exp - lshift}
	lower.mant <<= uint(lower.exp - upper.exp)
	lower.exp = upper.exp
	return lower, upper
}

// Multiply sets f to the product f*g: the result is correctly rounded,
// but not normalized.
//
// Rounding on bit 63 of the low word gives the same result as summing
// four 32x32 partial products with a 1<<31 bias on the middle word.
func (f *extFloat) Multiply(g extFloat) {
	hi, lo := bits.Mul64(f.mant, g.mant)
	// Round up.
	f.mant = hi + (lo >> 63)
	f.exp = f.exp + g.exp + 64
}

const (
	firstPowerOfTen = -348
	stepPowerOfTen  = 8
	numPowersOfTen  = 87
	oneLog10        = 0.30102999566398114 // log10(2)
)

// The constants expMin and expMax constrain the binary exponent of the
// scaled values. A small integral part keeps the divisions of the first
// digit generation phase cheap and leaves room for 10*fraction.
const (
	expMin = -60
	expMax = -32
)

// cachedPower returns the power of ten 10^k from powersOfTen which brings
// a normalized number of binary exponent exp into [expMin, expMax] once
// multiplied, along with k.
func cachedPower(exp int) (extFloat, int) {
	approx := int(-float64(exp+numPowersOfTen) * oneLog10)
	i := (approx - firstPowerOfTen) / stepPowerOfTen
	for {
		e := exp + powersOfTen[i].exp + 64
		switch {
		case e < expMin:
			i++
		case e > expMax:
			i--
		default:
			return powersOfTen[i], firstPowerOfTen + i*stepPowerOfTen
		}
	}
}

// powersOfTen holds normalized and correctly rounded mantissas of 10^k
// for k = firstPowerOfTen + stepPowerOfTen*i.
var powersOfTen = [numPowersOfTen]extFloat{
	{0xfa8fd5a0081c0288, -1220}, // 1e-348
	{0xbaaee17fa23ebf76, -1193}, // 1e-340
	{0x8b16fb203055ac76, -1166}, // 1e-332
	{0xcf42894a5dce35ea, -1140}, // 1e-324
	{0x9a6bb0aa55653b2d, -1113}, // 1e-316
	{0xe61acf033d1a45df, -1087}, // 1e-308
	{0xab70fe17c79ac6ca, -1060}, // 1e-300
	{0xff77b1fcbebcdc4f, -1034}, // 1e-292
	{0xbe5691ef416bd60c, -1007}, // 1e-284
	{0x8dd01fad907ffc3c, -980},  // 1e-276
	{0xd3515c2831559a83, -954},  // 1e-268
	{0x9d71ac8fada6c9b5, -927},  // 1e-260
	{0xea9c227723ee8bcb, -901},  // 1e-252
	{0xaecc49914078536d, -874},  // 1e-244
	{0x823c12795db6ce57, -847},  // 1e-236
	{0xc21094364dfb5637, -821},  // 1e-228
	{0x9096ea6f3848984f, -794},  // 1e-220
	{0xd77485cb25823ac7, -768},  // 1e-212
	{0xa086cfcd97bf97f4, -741},  // 1e-204
	{0xef340a98172aace5, -715},  // 1e-196
	{0xb23867fb2a35b28e, -688},  // 1e-188
	{0x84c8d4dfd2c63f3b, -661},  // 1e-180
	{0xc5dd44271ad3cdba, -635},  // 1e-172
	{0x936b9fcebb25c996, -608},  // 1e-164
	{0xdbac6c247d62a584, -582},  // 1e-156
	{0xa3ab66580d5fdaf6, -555},  // 1e-148
	{0xf3e2f893dec3f126, -529},  // 1e-140
	{0xb5b5ada8aaff80b8, -502},  // 1e-132
	{0x87625f056c7c4a8b, -475},  // 1e-124
	{0xc9bcff6034c13053, -449},  // 1e-116
	{0x964e858c91ba2655, -422},  // 1e-108
	{0xdff9772470297ebd, -396},  // 1e-100
	{0xa6dfbd9fb8e5b88f, -369},  // 1e-92
	{0xf8a95fcf88747d94, -343},  // 1e-84
	{0xb94470938fa89bcf, -316},  // 1e-76
	{0x8a08f0f8bf0f156b, -289},  // 1e-68
	{0xcdb02555653131b6, -263},  // 1e-60
	{0x993fe2c6d07b7fac, -236},  // 1e-52
	{0xe45c10c42a2b3b06, -210},  // 1e-44
	{0xaa242499697392d3, -183},  // 1e-36
	{0xfd87b5f28300ca0e, -157},  // 1e-28
	{0xbce5086492111aeb, -130},  // 1e-20
	{0x8cbccc096f5088cc, -103},  // 1e-12
	{0xd1b71758e219652c, -77},   // 1e-4
	{0x9c40000000000000, -50},   // 1e4
	{0xe8d4a51000000000, -24},   // 1e12
	{0xad78ebc5ac620000, 3},     // 1e20
	{0x813f3978f8940984, 30},    // 1e28
	{0xc097ce7bc90715b3, 56},    // 1e36
	{0x8f7e32ce7bea5c70, 83},    // 1e44
	{0xd5d238a4abe98068, 109},   // 1e52
	{0x9f4f2726179a2245, 136},   // 1e60
	{0xed63a231d4c4fb27, 162},   // 1e68
	{0xb0de65388cc8ada8, 189},   // 1e76
	{0x83c7088e1aab65db, 216},   // 1e84
	{0xc45d1df942711d9a, 242},   // 1e92
	{0x924d692ca61be758, 269},   // 1e100
	{0xda01ee641a708dea, 295},   // 1e108
	{0xa26da3999aef774a, 322},   // 1e116
	{0xf209787bb47d6b85, 348},   // 1e124
	{0xb454e4a179dd1877, 375},   // 1e132
	{0x865b86925b9bc5c2, 402},   // 1e140
	{0xc83553c5c8965d3d, 428},   // 1e148
	{0x952ab45cfa97a0b3, 455},   // 1e156
	{0xde469fbd99a05fe3, 481},   // 1e164
	{0xa59bc234db398c25, 508},   // 1e172
	{0xf6c69a72a3989f5c, 534},   // 1e180
	{0xb7dcbf5354e9bece, 561},   // 1e188
	{0x88fcf317f22241e2, 588},   // 1e196
	{0xcc20ce9bd35c78a5, 614},   // 1e204
	{0x98165af37b2153df, 641},   // 1e212
	{0xe2a0b5dc971f303a, 667},   // 1e220
	{0xa8d9d1535ce3b396, 694},   // 1e228
	{0xfb9b7cd9a4a7443c, 720},   // 1e236
	{0xbb764c4ca7a44410, 747},   // 1e244
	{0x8bab8eefb6409c1a, 774},   // 1e252
	{0xd01fef10a657842c, 800},   // 1e260
	{0x9b10a4e5e9913129, 827},   // 1e268
	{0xe7109bfba19c0c9d, 853},   // 1e276
	{0xac2820d9623bf429, 880},   // 1e284
	{0x80444b5e7aa7cf85, 907},   // 1e292
	{0xbf21e44003acdd2d, 933},   // 1e300
	{0x8e679c2f5e44ff8f, 960},   // 1e308
	{0xd433179d9c8cb841, 986},   // 1e316
	{0x9e19db92b4e31ba9, 1013},  // 1e324
	{0xeb96bf6ebadf77d9, 1039},  // 1e332
	{0xaf87023b9bf0ee6b, 1066},  // 1e340
}
