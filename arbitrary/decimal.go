// Package arbitrary extends the interchange formats past decimal160.
//
// The layout of every class follows from its width (see package width), but
// above class 28 the exponent range no longer fits an int64. Decimal carries
// an unbounded exponent and Bitstring holds a format of any positive multiple
// of 4 bytes. The field codecs are the same ones the fixed capacity package
// uses; only the exponent bias is computed with big integers.
package arbitrary

import (
	"bytes"

	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/decbits/decimal"
)

// Decimal is a triple with an exponent of any size. A nil Exponent is zero.
type Decimal struct {
	Kind        decimal.Kind
	Negative    bool
	Coefficient []byte
	Exponent    *apd.BigInt
	Payload     []byte
}

// New returns a finite decimal.
func New(negative bool, coefficient []byte, exponent *apd.BigInt) Decimal {
	return Decimal{
		Kind:        decimal.Finite,
		Negative:    negative,
		Coefficient: coefficient,
		Exponent:    exponent,
	}
}

// FromTriple widens a triple.
func FromTriple(t decimal.Triple) Decimal {
	d := Decimal{
		Kind:        t.Kind,
		Negative:    t.Negative,
		Coefficient: t.Coefficient,
		Payload:     t.Payload,
	}

	if t.Kind == decimal.Finite {
		d.Exponent = apd.NewBigInt(t.Exponent)
	}

	return d
}

func (d Decimal) exponent() *apd.BigInt {
	if d.Exponent == nil || d.Kind != decimal.Finite {
		return new(apd.BigInt)
	}

	return d.Exponent
}

// Triple narrows the decimal. The exponent must fit an int64.
func (d Decimal) Triple() (t decimal.Triple, err error) {
	e := d.exponent()
	if !e.IsInt64() {
		return t, decimal.CapacityExceeded.New("exponent %s overflows int64", e)
	}

	return decimal.Triple{
		Kind:        d.Kind,
		Negative:    d.Negative,
		Coefficient: d.Coefficient,
		Exponent:    e.Int64(),
		Payload:     d.Payload,
	}, nil
}

// Validate reports whether the decimal can be encoded.
func (d Decimal) Validate() error {
	t := decimal.Triple{
		Kind:        d.Kind,
		Negative:    d.Negative,
		Coefficient: d.Coefficient,
		Payload:     d.Payload,
	}

	return t.Validate()
}

// Equal returns true if both decimals have the same representation after
// leading zeros are dropped.
func (d Decimal) Equal(o Decimal) bool {
	if d.Kind != o.Kind || d.Negative != o.Negative {
		return false
	}

	switch d.Kind {
	case decimal.Finite:
		return d.exponent().Cmp(o.exponent()) == 0 &&
			bytes.Equal(decimal.TrimCoefficient(d.Coefficient), decimal.TrimCoefficient(o.Coefficient))
	case decimal.QuietNaN, decimal.SignalingNaN:
		return bytes.Equal(decimal.TrimPayload(d.Payload), decimal.TrimPayload(o.Payload))
	}

	return true
}

func (d Decimal) String() string {
	return Format(d)
}
