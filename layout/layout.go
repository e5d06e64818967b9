// Package layout assembles whole interchange formats from the combination
// field and the declet-packed trailing significand.
//
// Buffers are little-endian and 4w bytes long. Exponents cross this package
// already biased, as little-endian bytes, so callers are free to do the
// exponent arithmetic in whatever integer representation suits them.
package layout

import (
	"github.com/calebcase/decbits/combination"
	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/dpd"
	"github.com/calebcase/decbits/width"
)

func class(buf []byte) width.Class {
	c, ok := width.Of(len(buf))
	if !ok {
		panic(decimal.Error.New("invalid format length %d", len(buf)))
	}

	return c
}

// EncodeFinite writes a finite value. The coefficient may carry leading
// zeros; its significant digits must fit the precision of the format.
func EncodeFinite(buf []byte, negative bool, coefficient []byte, biased []byte) error {
	c := class(buf)

	coefficient = decimal.TrimCoefficient(coefficient)
	if len(coefficient) > c.Precision() {
		return decimal.CapacityExceeded.New("%d digits exceed the %d digit precision of %s", len(coefficient), c.Precision(), c)
	}

	clear(buf)

	msd := dpd.EncodeTrailing(buf, c.Declets(), coefficient)
	combination.EncodeFinite(buf, c, biased, msd)
	combination.SetNegative(buf, negative)

	return nil
}

// EncodeInfinity writes an infinity.
func EncodeInfinity(buf []byte, negative bool) {
	clear(buf)

	combination.EncodeInfinity(buf)
	combination.SetNegative(buf, negative)
}

// EncodeNaN writes a NaN with its payload in the trailing significand.
func EncodeNaN(buf []byte, negative, signaling bool, payload []byte) error {
	c := class(buf)

	payload = decimal.TrimPayload(payload)
	if len(payload) > c.TrailingDigits() {
		return decimal.CapacityExceeded.New("%d payload digits exceed the %d available in %s", len(payload), c.TrailingDigits(), c)
	}

	clear(buf)

	dpd.EncodeTrailing(buf, c.Declets(), payload)
	combination.EncodeNaN(buf, signaling)
	combination.SetNegative(buf, negative)

	return nil
}

// Kind classifies the format.
func Kind(buf []byte) decimal.Kind {
	return combination.Classify(buf).Kind
}

// Negative returns the sign bit.
func Negative(buf []byte) bool {
	return combination.Negative(buf)
}

// DecodeFinite reads a finite value. The coefficient has no leading zeros
// (zero is a single 0 digit) and biased is ExponentBytes long.
func DecodeFinite(buf []byte) (coefficient []byte, biased []byte) {
	c := class(buf)

	biased, msd := combination.DecodeFinite(nil, buf, c)

	coefficient = make([]byte, 0, c.Precision())
	coefficient = append(coefficient, msd)
	coefficient = dpd.DecodeTrailing(coefficient, buf, c.Declets())

	return decimal.TrimCoefficient(coefficient), biased
}

// DecodePayload reads the NaN payload. It is empty when the trailing
// significand is zero.
func DecodePayload(buf []byte) []byte {
	c := class(buf)

	payload := dpd.DecodeTrailing(make([]byte, 0, c.TrailingDigits()), buf, c.Declets())

	return decimal.TrimPayload(payload)
}
