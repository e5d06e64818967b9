package arbitrary

import (
	"bytes"
	"math/big"
	"slices"

	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/layout"
	"github.com/calebcase/decbits/width"
)

// Bitstring is an encoded decimal of any width class, stored little-endian.
// It is never modified after construction. The zero value decodes as a quiet
// NaN without payload.
type Bitstring struct {
	buf []byte
}

// FromLEBytes returns the Bitstring held in data, which must be a positive
// multiple of 4 bytes long. The bytes are copied.
func FromLEBytes(data []byte) (b Bitstring, err error) {
	if _, ok := width.Of(len(data)); !ok {
		return b, decimal.Error.New("invalid length %d: not a positive multiple of 4", len(data))
	}

	return Bitstring{buf: bytes.Clone(data)}, nil
}

// Class returns the width class. It is zero for the zero value.
func (b Bitstring) Class() width.Class {
	return width.Class(len(b.buf) / 4)
}

// Len returns the length in bytes.
func (b Bitstring) Len() int {
	return len(b.buf)
}

// LEBytes returns a copy of the little-endian bytes.
func (b Bitstring) LEBytes() []byte {
	return bytes.Clone(b.buf)
}

// Equal reports whether both bitstrings hold the same bytes.
func (b Bitstring) Equal(o Bitstring) bool {
	return bytes.Equal(b.buf, o.buf)
}

// Kind classifies the value.
func (b Bitstring) Kind() decimal.Kind {
	if len(b.buf) == 0 {
		return decimal.QuietNaN
	}

	return layout.Kind(b.buf)
}

// IsNegative returns the sign bit.
func (b Bitstring) IsNegative() bool {
	return len(b.buf) > 0 && layout.Negative(b.buf)
}

func (b Bitstring) String() string {
	if len(b.buf) == 0 {
		return "<invalid>"
	}

	return Format(Decode(b))
}

// Decimal is shorthand for Decode(b).
func (b Bitstring) Decimal() Decimal {
	return Decode(b)
}

// biasedBytes returns exponent + bias as ExponentBytes little-endian bytes.
// The exponent must be in range.
func biasedBytes(c width.Class, exponent *apd.BigInt) []byte {
	v := new(apd.BigInt).Add(exponent, Bias(c))

	le := v.MathBigInt().FillBytes(make([]byte, c.ExponentBytes()))
	slices.Reverse(le)

	return le
}

func unbias(c width.Class, biased []byte) *apd.BigInt {
	be := slices.Clone(biased)
	slices.Reverse(be)

	e := new(apd.BigInt).SetMathBigInt(new(big.Int).SetBytes(be))

	return e.Sub(e, Bias(c))
}

// Encode stores the decimal in the smallest class that holds it exactly.
func Encode(d Decimal) (Bitstring, error) {
	return EncodeWith(Selector{}, d)
}

// EncodeWith stores the decimal in the class chosen by s.
func EncodeWith(s Selector, d Decimal) (b Bitstring, err error) {
	err = d.Validate()
	if err != nil {
		return b, err
	}

	c, err := s.ForDecimal(d)
	if err != nil {
		return b, err
	}

	return EncodeClass(c, d)
}

// EncodeTriple stores a triple in the smallest class that holds it,
// without the decimal160 limit.
func EncodeTriple(t decimal.Triple) (Bitstring, error) {
	return Encode(FromTriple(t))
}

// EncodeClass stores the decimal in class c.
func EncodeClass(c width.Class, d Decimal) (b Bitstring, err error) {
	defer decimal.Error.WrapP(&err)

	if c < 1 {
		return b, decimal.Error.New("invalid class %d", c)
	}

	err = d.Validate()
	if err != nil {
		return b, err
	}

	buf := make([]byte, c.Bytes())

	switch d.Kind {
	case decimal.Finite:
		e := d.exponent()
		if !Contains(c, e) {
			return b, decimal.CapacityExceeded.New("exponent %s is outside the range of %s", e, c)
		}

		err = layout.EncodeFinite(buf, d.Negative, d.Coefficient, biasedBytes(c, e))
	case decimal.Infinity:
		layout.EncodeInfinity(buf, d.Negative)
	default:
		err = layout.EncodeNaN(buf, d.Negative, d.Kind == decimal.SignalingNaN, d.Payload)
	}

	if err != nil {
		return b, err
	}

	return Bitstring{buf: buf}, nil
}

// Decode returns the decimal held in b. Every bit pattern decodes.
func Decode(b Bitstring) Decimal {
	if len(b.buf) == 0 {
		return Decimal{Kind: decimal.QuietNaN}
	}

	negative := layout.Negative(b.buf)

	switch kind := layout.Kind(b.buf); kind {
	case decimal.Finite:
		coefficient, biased := layout.DecodeFinite(b.buf)

		return New(negative, coefficient, unbias(b.Class(), biased))
	case decimal.Infinity:
		return Decimal{Kind: decimal.Infinity, Negative: negative}
	default:
		return Decimal{
			Kind:     kind,
			Negative: negative,
			Payload:  layout.DecodePayload(b.buf),
		}
	}
}
