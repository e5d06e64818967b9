package decbits

import (
	"bytes"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/layout"
	"github.com/calebcase/decbits/width"
)

// MaxClass is the largest width class a Bitstring holds.
const MaxClass = width.Decimal160

// MaxBytes is the length of the largest Bitstring.
const MaxBytes = 4 * int(MaxClass)

// Bitstring is an encoded decimal in an IEEE 754 decimal interchange format,
// stored little-endian.
//
// A Bitstring is a plain value: it needs no heap memory and is never
// modified after construction. The zero value is not a valid format: it
// decodes as a quiet NaN without payload and formats as <invalid>.
type Bitstring struct {
	class width.Class
	buf   [MaxBytes]byte
}

// FromLEBytes returns the Bitstring held in data. The length must be a
// positive multiple of 4 and at most MaxBytes; the bits themselves are not
// checked since every pattern decodes.
func FromLEBytes(data []byte) (b Bitstring, err error) {
	c, ok := width.Of(len(data))
	if !ok {
		return b, Error.New("invalid length %d: not a positive multiple of 4", len(data))
	}

	return FromClass(c, data)
}

// FromClass returns the Bitstring of class c held in data, which must be
// exactly c.Bytes() long.
func FromClass(c width.Class, data []byte) (b Bitstring, err error) {
	err = checkClass(c)
	if err != nil {
		return b, err
	}

	if len(data) != c.Bytes() {
		return b, Error.New("invalid length %d for %s", len(data), c)
	}

	b.class = c
	copy(b.buf[:], data)

	return b, nil
}

func (b *Bitstring) raw() []byte {
	return b.buf[:b.class.Bytes()]
}

// Class returns the width class.
func (b Bitstring) Class() width.Class {
	return b.class
}

// Len returns the length in bytes.
func (b Bitstring) Len() int {
	return b.class.Bytes()
}

// LEBytes returns a copy of the little-endian bytes.
func (b Bitstring) LEBytes() []byte {
	return b.AppendLEBytes(nil)
}

// AppendLEBytes appends the little-endian bytes to dst.
func (b Bitstring) AppendLEBytes(dst []byte) []byte {
	return append(dst, b.raw()...)
}

// Equal reports whether both bitstrings have the same class and bits.
func (b Bitstring) Equal(o Bitstring) bool {
	return b.class == o.class && bytes.Equal(b.raw(), o.raw())
}

// Kind classifies the value.
func (b Bitstring) Kind() decimal.Kind {
	if b.class == 0 {
		return decimal.QuietNaN
	}

	return layout.Kind(b.raw())
}

// IsFinite returns true for finite values, zero included.
func (b Bitstring) IsFinite() bool { return b.Kind() == decimal.Finite }

// IsInfinite returns true for either infinity.
func (b Bitstring) IsInfinite() bool { return b.Kind() == decimal.Infinity }

// IsNaN returns true for quiet and signaling NaN.
func (b Bitstring) IsNaN() bool { return b.Kind().IsNaN() }

// IsQuietNaN returns true for quiet NaN.
func (b Bitstring) IsQuietNaN() bool { return b.Kind() == decimal.QuietNaN }

// IsSignalingNaN returns true for signaling NaN.
func (b Bitstring) IsSignalingNaN() bool { return b.Kind() == decimal.SignalingNaN }

// IsNegative returns the sign bit. It is set for -0, -inf and negative NaN.
func (b Bitstring) IsNegative() bool { return b.class != 0 && layout.Negative(b.raw()) }

// String returns the canonical decimal text.
func (b Bitstring) String() string {
	if b.class == 0 {
		return "<invalid>"
	}

	return Format(b)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Bitstring) MarshalBinary() (data []byte, err error) {
	if b.class == 0 {
		return nil, Error.New("invalid bitstring")
	}

	return b.LEBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Bitstring) UnmarshalBinary(data []byte) (err error) {
	*b, err = FromLEBytes(data)

	return err
}

// MarshalText implements encoding.TextMarshaler.
func (b Bitstring) MarshalText() (data []byte, err error) {
	if b.class == 0 {
		return nil, Error.New("invalid bitstring")
	}

	return []byte(Format(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bitstring) UnmarshalText(data []byte) (err error) {
	*b, err = Parse(string(data))

	return err
}
