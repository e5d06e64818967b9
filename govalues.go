package decbits

import (
	"strconv"

	govalues "github.com/govalues/decimal"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
)

// FromDecimal encodes a github.com/govalues/decimal value. The scale is
// kept: 1.50 encodes as 150e-2.
func FromDecimal(d govalues.Decimal) Bitstring {
	coefficient, err := decimal.Digits(strconv.FormatUint(d.Coef(), 10))
	if err != nil {
		panic(err)
	}

	return must(decimal.New(d.IsNeg(), coefficient, -int64(d.Scale())))
}

// Decimal converts b into a github.com/govalues/decimal value.
//
// Positive exponents are expanded into trailing zeros. The result must fit
// the precision and scale limits of that package (CapacityExceeded
// otherwise); Infinity, NaN and negative zero have no counterpart (Inexact).
func (b Bitstring) Decimal() (d govalues.Decimal, err error) {
	t := Decode(b)
	if t.Kind != decimal.Finite {
		return d, Inexact.New("%s has no decimal counterpart", t.Kind)
	}

	if t.IsZero() && t.Negative {
		return d, Inexact.New("%s: negative zero has no decimal counterpart", b)
	}

	coefficient := t.Coefficient

	if t.Exponent > 0 && !t.IsZero() {
		if t.Exponent > int64(govalues.MaxPrec-len(coefficient)) {
			return d, CapacityExceeded.New("%s exceeds %d digits", b, govalues.MaxPrec)
		}

		coefficient = append(append([]byte{}, coefficient...), make([]byte, t.Exponent)...)
	}

	exponent := t.Exponent
	if exponent > 0 {
		exponent = 0
	}

	if -exponent > govalues.MaxScale {
		return d, CapacityExceeded.New("%s exceeds scale %d", b, govalues.MaxScale)
	}

	if len(coefficient) > govalues.MaxPrec {
		return d, CapacityExceeded.New("%s exceeds %d digits", b, govalues.MaxPrec)
	}

	// Write the value with a decimal point: at least one digit before it.
	if n := int64(len(coefficient)); exponent < 0 && n <= -exponent {
		padded := make([]byte, -exponent+1-n, -exponent+1)
		coefficient = append(padded, coefficient...)
	}

	d, err = govalues.Parse(string(text.AppendFinite(nil, t.Negative, coefficient, exponent)))
	if err != nil {
		return d, CapacityExceeded.Wrap(err)
	}

	return d, nil
}
