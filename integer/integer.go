// Package integer converts between decimal triples and native integers.
//
// Conversions into a triple are exact: every digit of the integer becomes a
// coefficient digit and the exponent is 0. Conversions out of a triple accept
// any exponent as long as the value is integral and fits the target type.
package integer

import (
	"math/big"

	"github.com/calebcase/decbits/decimal"
)

// Block is a signed integer number: a sign and a big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block of i.
func FromBig(i *big.Int) Block {
	return Block{
		Value:    i.Bytes(),
		Negative: i.Sign() < 0,
	}
}

// Big returns the block as a big.Int.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Triple returns the exact decimal triple of the block. A negative zero
// stays negative.
func (b Block) Triple() decimal.Triple {
	i := new(big.Int).SetBytes(b.Value)

	return decimal.New(b.Negative, ascii(i.Text(10)), 0)
}

// ascii converts base 10 text without a sign into digit values.
func ascii(s string) []byte {
	ds := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ds[i] = s[i] - '0'
	}

	return ds
}

// Schema for an integer.
type Schema struct {
	Bits uint64

	Signed bool
}

var (
	Int64  = Schema{Bits: 64, Signed: true}
	Uint64 = Schema{Bits: 64}

	Int128  = Schema{Bits: 128, Signed: true}
	Uint128 = Schema{Bits: 128}
)

// Min returns the smallest value of the schema.
func (s Schema) Min() *big.Int {
	if !s.Signed {
		return new(big.Int)
	}

	m := new(big.Int).Lsh(big.NewInt(1), uint(s.Bits-1))

	return m.Neg(m)
}

// Max returns the largest value of the schema.
func (s Schema) Max() *big.Int {
	bits := s.Bits
	if s.Signed {
		bits--
	}

	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	return m.Sub(m, big.NewInt(1))
}

// maxDigits is an upper bound on the decimal digits of any value of the
// schema.
func (s Schema) maxDigits() int {
	// log10(2) < 0.302
	return int(s.Bits*302/1000) + 1
}

// Check returns an error if the block does not fit the schema.
func (s Schema) Check(b Block) error {
	i := b.Big()
	if i.Cmp(s.Min()) < 0 || i.Cmp(s.Max()) > 0 {
		return decimal.CapacityExceeded.New("%s does not fit %s", i, s)
	}

	return nil
}

func (s Schema) String() string {
	if s.Signed {
		return "int" + big.NewInt(int64(s.Bits)).String()
	}

	return "uint" + big.NewInt(int64(s.Bits)).String()
}

// Block converts an integral triple into a block that fits the schema.
//
// Fraction digits must all be zero (Inexact otherwise). Infinity and values
// outside the schema are CapacityExceeded; NaN is Inexact.
func (s Schema) Block(t decimal.Triple) (b Block, err error) {
	switch t.Kind {
	case decimal.Finite:
	case decimal.Infinity:
		return b, decimal.CapacityExceeded.New("infinity does not fit %s", s)
	default:
		return b, decimal.Inexact.New("%s has no integer value", t.Kind)
	}

	ds := decimal.TrimCoefficient(t.Coefficient)

	switch {
	case t.IsZero():
		ds = []byte{0}
	case t.Exponent < 0:
		if t.Exponent <= -int64(len(ds)) {
			return b, decimal.Inexact.New("value has a fraction")
		}

		cut := int64(len(ds)) + t.Exponent
		for _, d := range ds[cut:] {
			if d != 0 {
				return b, decimal.Inexact.New("value has a fraction")
			}
		}

		ds = ds[:cut]
	case t.Exponent > 0:
		if t.Exponent > int64(s.maxDigits()-len(ds)) {
			return b, decimal.CapacityExceeded.New("value does not fit %s", s)
		}

		ds = append(append([]byte{}, ds...), make([]byte, t.Exponent)...)
	}

	if len(ds) > s.maxDigits() {
		return b, decimal.CapacityExceeded.New("value does not fit %s", s)
	}

	i, ok := new(big.Int).SetString(decimal.ASCII(ds), 10)
	if !ok {
		return b, decimal.Error.New("invalid coefficient %v", t.Coefficient)
	}

	b = Block{Value: i.Bytes(), Negative: t.Negative && i.Sign() != 0}

	err = s.Check(b)
	if err != nil {
		return Block{}, err
	}

	return b, nil
}
