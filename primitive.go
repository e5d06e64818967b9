package decbits

import (
	"golang.org/x/exp/constraints"

	"github.com/calebcase/decbits/binfloat"
	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/integer"
)

// must encodes triples that always fit MaxClass, such as every native
// integer and float.
func must(t decimal.Triple) Bitstring {
	b, err := Encode(t)
	if err != nil {
		panic(err)
	}

	return b
}

// FromSigned encodes a signed integer exactly.
func FromSigned[I constraints.Signed](i I) Bitstring {
	return must(integer.FromSigned(i))
}

// FromUnsigned encodes an unsigned integer exactly.
func FromUnsigned[U constraints.Unsigned](u U) Bitstring {
	return must(integer.FromUnsigned(u))
}

// FromInt128 encodes the two's complement 128 bit integer hi<<64 | lo.
func FromInt128(hi, lo uint64) Bitstring {
	return must(integer.FromInt128(hi, lo))
}

// FromUint128 encodes the unsigned 128 bit integer hi<<64 | lo.
func FromUint128(hi, lo uint64) Bitstring {
	return must(integer.FromUint128(hi, lo))
}

// FromFloat64 encodes the shortest decimal that round-trips to f.
func FromFloat64(f float64) Bitstring {
	return must(binfloat.FromFloat64(f))
}

// FromFloat32 encodes the shortest decimal that round-trips to f.
func FromFloat32(f float32) Bitstring {
	return must(binfloat.FromFloat32(f))
}

// ToSigned converts b into a signed integer of type I.
func ToSigned[I constraints.Signed](b Bitstring) (I, error) {
	return integer.ToSigned[I](Decode(b))
}

// ToUnsigned converts b into an unsigned integer of type U.
func ToUnsigned[U constraints.Unsigned](b Bitstring) (U, error) {
	return integer.ToUnsigned[U](Decode(b))
}

// Int64 converts b into an int64.
func (b Bitstring) Int64() (int64, error) {
	return ToSigned[int64](b)
}

// Uint64 converts b into a uint64.
func (b Bitstring) Uint64() (uint64, error) {
	return ToUnsigned[uint64](b)
}

// Int128 converts b into a two's complement 128 bit integer.
func (b Bitstring) Int128() (hi, lo uint64, err error) {
	return integer.ToInt128(Decode(b))
}

// Uint128 converts b into an unsigned 128 bit integer.
func (b Bitstring) Uint128() (hi, lo uint64, err error) {
	return integer.ToUint128(Decode(b))
}

// Float64 converts b into a float64 if that loses nothing.
func (b Bitstring) Float64() (float64, error) {
	return binfloat.ToFloat64(Decode(b))
}

// Float32 converts b into a float32 if that loses nothing.
func (b Bitstring) Float32() (float32, error) {
	return binfloat.ToFloat32(Decode(b))
}
