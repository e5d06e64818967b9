package integer

import (
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/decbits/decimal"
)

// FromSigned returns the exact triple of a signed integer.
func FromSigned[I constraints.Signed](i I) decimal.Triple {
	var buf [20]byte

	s := strconv.AppendInt(buf[:0], int64(i), 10)
	if s[0] == '-' {
		return decimal.New(true, ascii(string(s[1:])), 0)
	}

	return decimal.New(false, ascii(string(s)), 0)
}

// FromUnsigned returns the exact triple of an unsigned integer.
func FromUnsigned[U constraints.Unsigned](u U) decimal.Triple {
	var buf [20]byte

	return decimal.New(false, ascii(string(strconv.AppendUint(buf[:0], uint64(u), 10))), 0)
}

// ToSigned converts an integral triple into a signed integer of type I.
func ToSigned[I constraints.Signed](t decimal.Triple) (I, error) {
	b, err := Int64.Block(t)
	if err != nil {
		return 0, err
	}

	v := b.Big().Int64()
	if int64(I(v)) != v {
		return 0, decimal.CapacityExceeded.New("%d overflows %T", v, I(0))
	}

	return I(v), nil
}

// ToUnsigned converts an integral triple into an unsigned integer of type U.
// Negative zero converts to 0.
func ToUnsigned[U constraints.Unsigned](t decimal.Triple) (U, error) {
	b, err := Uint64.Block(t)
	if err != nil {
		return 0, err
	}

	v := b.Big().Uint64()
	if uint64(U(v)) != v {
		return 0, decimal.CapacityExceeded.New("%d overflows %T", v, U(0))
	}

	return U(v), nil
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

func join(hi, lo uint64) *big.Int {
	i := new(big.Int).SetUint64(hi)
	i.Lsh(i, 64)

	return i.Or(i, new(big.Int).SetUint64(lo))
}

func split(i *big.Int) (hi, lo uint64) {
	lo = new(big.Int).And(i, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi = new(big.Int).Rsh(i, 64).Uint64()

	return hi, lo
}

// FromUint128 returns the exact triple of the unsigned 128 bit integer
// hi<<64 | lo.
func FromUint128(hi, lo uint64) decimal.Triple {
	return FromBig(join(hi, lo)).Triple()
}

// FromInt128 returns the exact triple of the two's complement 128 bit
// integer hi<<64 | lo.
func FromInt128(hi, lo uint64) decimal.Triple {
	i := join(hi, lo)
	if hi>>63 == 1 {
		i.Sub(i, two128)
	}

	return FromBig(i).Triple()
}

// ToUint128 converts an integral triple into an unsigned 128 bit integer.
func ToUint128(t decimal.Triple) (hi, lo uint64, err error) {
	b, err := Uint128.Block(t)
	if err != nil {
		return 0, 0, err
	}

	hi, lo = split(b.Big())

	return hi, lo, nil
}

// ToInt128 converts an integral triple into a two's complement 128 bit
// integer.
func ToInt128(t decimal.Triple) (hi, lo uint64, err error) {
	b, err := Int128.Block(t)
	if err != nil {
		return 0, 0, err
	}

	i := b.Big()
	if i.Sign() < 0 {
		i.Add(i, two128)
	}

	hi, lo = split(i)

	return hi, lo, nil
}
