package combination

import (
	"github.com/calebcase/decbits/width"
)

// Sign is the sign bit of the most significant byte.
const Sign byte = 0b_1000_0000

// keep selects the sign and the two exponent continuation bits that share
// the most significant byte with the combination field.
const keep byte = 0b_1000_0011

// Classify returns the type of the format in buf.
func Classify(buf []byte) Type {
	t, _ := Types.Match(buf[len(buf)-1])

	return t
}

// Negative returns the sign bit.
func Negative(buf []byte) bool {
	return buf[len(buf)-1]&Sign != 0
}

// SetNegative sets or clears the sign bit.
func SetNegative(buf []byte, negative bool) {
	if negative {
		buf[len(buf)-1] |= Sign
	} else {
		buf[len(buf)-1] &^= Sign
	}
}

func bit(buf []byte, i int) byte {
	return buf[i/8] >> uint(i%8) & 1
}

func setBit(buf []byte, i int, v byte) {
	if v&1 == 1 {
		buf[i/8] |= 1 << uint(i%8)
	} else {
		buf[i/8] &^= 1 << uint(i%8)
	}
}

// EncodeFinite writes the biased exponent (little-endian, ExponentBits wide)
// and the leading digit of a finite value of class c.
//
// The biased exponent must not exceed c.MaxBiased(), so its top two bits are
// never 11.
func EncodeFinite(buf []byte, c width.Class, biased []byte, msd byte) {
	eb := c.ExponentBits()
	cont := c.ContinuationBits()
	start := c.TrailingBits()

	for i := 0; i < cont; i++ {
		setBit(buf, start+i, bit(biased, i))
	}

	top := bit(biased, eb-1)<<1 | bit(biased, eb-2)

	last := &buf[len(buf)-1]
	comb := *last & keep

	if msd < 8 {
		comb |= top<<5 | (msd&0b111)<<2
	} else {
		comb |= 0b_0110_0000 | top<<3 | (msd&1)<<2
	}

	*last = comb
}

// DecodeFinite appends the biased exponent (little-endian, ExponentBytes
// long) of a finite value of class c to dst and returns it with the leading
// digit.
func DecodeFinite(dst []byte, buf []byte, c width.Class) ([]byte, byte) {
	eb := c.ExponentBits()
	cont := c.ContinuationBits()
	start := c.TrailingBits()

	n := len(dst)
	for i := 0; i < c.ExponentBytes(); i++ {
		dst = append(dst, 0)
	}
	biased := dst[n:]

	for i := 0; i < cont; i++ {
		setBit(biased, i, bit(buf, start+i))
	}

	b := buf[len(buf)-1]

	var top, msd byte
	if b&0b_0110_0000 == 0b_0110_0000 {
		top = b >> 3 & 0b11
		msd = 8 | b>>2&1
	} else {
		top = b >> 5 & 0b11
		msd = b >> 2 & 0b111
	}

	setBit(biased, eb-2, top)
	setBit(biased, eb-1, top>>1)

	return dst, msd
}

// EncodeInfinity writes the infinity pattern into the most significant
// byte, keeping the sign.
func EncodeInfinity(buf []byte) {
	last := &buf[len(buf)-1]
	*last = *last&Sign | Infinity.Prefix
}

// EncodeNaN writes the NaN pattern into the most significant byte, keeping
// the sign.
func EncodeNaN(buf []byte, signaling bool) {
	t := QuietNaN
	if signaling {
		t = SignalingNaN
	}

	last := &buf[len(buf)-1]
	*last = *last&Sign | t.Prefix
}
